//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_assign_post_test
package parcel_assign_post

import (
	"context"

	"parcel-service/internal/entities"
	"parcel-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignDeliverer(ctx context.Context, caller entities.Caller, parcelID, delivererID int64) (*entities.ParcelAssignment, error)
}

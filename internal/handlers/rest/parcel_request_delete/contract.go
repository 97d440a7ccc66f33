//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_request_delete_test
package parcel_request_delete

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
	RemoveDeliveryRequest(ctx context.Context, caller entities.Caller, parcelID, delivererID int64) (*entities.Parcel, error)
}

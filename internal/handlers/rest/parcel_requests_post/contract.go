//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_requests_post_test
package parcel_requests_post

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
	RequestToDeliver(ctx context.Context, caller entities.Caller, parcelIDs []int64) ([]entities.DeliveryRequestResult, error)
}

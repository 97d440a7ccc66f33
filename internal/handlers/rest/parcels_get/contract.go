//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_get_test
package parcels_get

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
	ListAvailable(ctx context.Context) ([]entities.Parcel, error)
	ListBySender(ctx context.Context, senderID int64) ([]entities.Parcel, error)
	ListByDeliverer(ctx context.Context, delivererID int64) ([]entities.Parcel, error)
	ListRequestedBy(ctx context.Context, delivererID int64) ([]entities.Parcel, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_get_test
package notifications_get

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
	ListNotifications(ctx context.Context, recipientID int64) ([]entities.Notification, error)
}

package parcel_event

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
	ProcessParcelEvent(ctx context.Context, event entities.ParcelEvent) (*entities.Notification, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"parcel-service/internal/entities"
)

// RenderFn собирает заголовок и текст уведомления по событию.
type RenderFn func(event entities.ParcelEvent) (title string, body string)

type Repository interface {
	Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error)
	ListByRecipient(ctx context.Context, recipientID int64) ([]entities.Notification, error)
}

type Push interface {
	Send(ctx context.Context, recipientID int64, title, body string) error
}

type HandlerFactory interface {
	GetHandler(kind entities.ParcelEventKind) (RenderFn, error)
}

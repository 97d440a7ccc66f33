package notification

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

// Notification доставляет уведомления получателям: рендерит текст по виду
// события, сохраняет персистентную копию и шлет push. Push намеренно
// fire-and-forget относительно matching engine, но внутри диспетчера его
// ошибка всплывает, чтобы воркер мог ее залогировать.
type Notification struct {
	repository Repository
	push       Push
	factory    HandlerFactory
}

func New(repository Repository, push Push, factory HandlerFactory) *Notification {
	return &Notification{
		repository: repository,
		push:       push,
		factory:    factory,
	}
}

func (s *Notification) ProcessParcelEvent(ctx context.Context, event entities.ParcelEvent) (*entities.Notification, error) {
	if event.RecipientID <= 0 {
		return nil, ErrInvalidAccountID
	}

	render, err := s.factory.GetHandler(event.Kind)
	if err != nil {
		return nil, fmt.Errorf("get render handler: %w", err)
	}
	title, body := render(event)

	created, err := s.repository.Create(ctx, entities.NotificationModify{
		RecipientID: &event.RecipientID,
		Kind:        &event.Kind,
		ParcelID:    &event.ParcelID,
		Title:       &title,
		Body:        &body,
	})
	if err != nil {
		return nil, fmt.Errorf("persist notification: %w", err)
	}

	if err := s.push.Send(ctx, event.RecipientID, title, body); err != nil {
		return created, fmt.Errorf("%w: %w", ErrPushUnavailable, err)
	}

	return created, nil
}

func (s *Notification) ListNotifications(ctx context.Context, recipientID int64) ([]entities.Notification, error) {
	if recipientID <= 0 {
		return nil, ErrInvalidAccountID
	}

	notifications, err := s.repository.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

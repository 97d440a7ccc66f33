package notification

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"parcel-service/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (recipient_id, kind, parcel_id, title, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, recipient_id, kind, parcel_id, title, body, created_at`

	var notificationModel NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationModifyEntity.RecipientID,
		notificationModifyEntity.Kind,
		notificationModifyEntity.ParcelID,
		notificationModifyEntity.Title,
		notificationModifyEntity.Body,
	).Scan(
		&notificationModel.ID,
		&notificationModel.RecipientID,
		&notificationModel.Kind,
		&notificationModel.ParcelID,
		&notificationModel.Title,
		&notificationModel.Body,
		&notificationModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) ListByRecipient(ctx context.Context, recipientID int64) ([]entities.Notification, error) {
	query := `
		SELECT id, recipient_id, kind, parcel_id, title, body, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY id DESC`

	rows, err := r.querier.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 8)
	for rows.Next() {
		var notificationModel NotificationDB
		err := rows.Scan(
			&notificationModel.ID,
			&notificationModel.RecipientID,
			&notificationModel.Kind,
			&notificationModel.ParcelID,
			&notificationModel.Title,
			&notificationModel.Body,
			&notificationModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		notificationModels = append(notificationModels, notificationModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

package outbox

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

// Repository транзакционный outbox доменных событий: Append пишется в той же
// транзакции что мутация посылки, релей забирает неотправленное батчами.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, eventModifyEntity entities.ParcelEventModify) error {
	query := `
		INSERT INTO parcel_events_outbox (kind, recipient_id, parcel_id, parcel_title, price, counterpart_name)
		VALUES ($1, $2, $3, $4, COALESCE($5, 0), COALESCE($6, ''))`

	_, err := r.querier.Exec(
		ctx,
		query,
		eventModifyEntity.Kind,
		eventModifyEntity.RecipientID,
		eventModifyEntity.ParcelID,
		eventModifyEntity.ParcelTitle,
		eventModifyEntity.Price,
		eventModifyEntity.CounterpartName,
	)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository append error: %w", err)
	}
	return nil
}

// ListUnsent блокирует выбранные строки с SKIP LOCKED, чтобы несколько
// инстансов релея не публиковали одно событие дважды.
func (r *Repository) ListUnsent(ctx context.Context, limit int64) ([]entities.ParcelEvent, error) {
	query := `
		SELECT id, kind, recipient_id, parcel_id, parcel_title, price, counterpart_name, created_at, sent_at
		FROM parcel_events_outbox
		WHERE sent_at IS NULL
		ORDER BY id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository list unsent error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]ParcelEventDB, 0, 8)
	for rows.Next() {
		var eventModel ParcelEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.Kind,
			&eventModel.RecipientID,
			&eventModel.ParcelID,
			&eventModel.ParcelTitle,
			&eventModel.Price,
			&eventModel.CounterpartName,
			&eventModel.CreatedAt,
			&eventModel.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository list unsent error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository list unsent error: %w", err)
	}

	return ToDomainList(eventModels), nil
}

func (r *Repository) MarkSent(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE parcel_events_outbox
		SET sent_at = NOW()
		WHERE id = ANY($1)`

	_, err := r.querier.Exec(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark sent error: %w", err)
	}
	return nil
}

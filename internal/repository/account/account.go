package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	accountservice "parcel-service/internal/service/account"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const accountColumns = `id, name, phone, kind, free_deliveries,
		total_sent_parcels, total_received_parcels, total_orders, total_delivered,
		total_earning, monthly_earnings, total_amount_spent,
		trips_per_day, total_trips_completed, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)

	query := `
		INSERT INTO accounts (name, phone, kind, free_deliveries)
		VALUES ($1, $2, $3, COALESCE($4, 0))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		accountModifyModel.Name,
		accountModifyModel.Phone,
		accountModifyModel.Kind,
		accountModifyModel.FreeDeliveries,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, accountservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected account repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	accountModel, err := scanAccount(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, accountservice.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository getbyid error: %w", err)
	}

	return ToDomain(accountModel), nil
}

func (r *Repository) Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error) {
	accountModifyModel := FromDomainModify(&accountModifyEntity)

	builder := qb.
		Update("accounts")

	// опциональные поля
	if accountModifyModel.Name != nil {
		builder = builder.Set("name", accountModifyModel.Name)
	}
	if accountModifyModel.Phone != nil {
		builder = builder.Set("phone", accountModifyModel.Phone)
	}
	if accountModifyModel.FreeDeliveries != nil {
		builder = builder.Set("free_deliveries", accountModifyModel.FreeDeliveries)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": accountModifyModel.ID}).
		Suffix("RETURNING " + accountColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	accountModel, err := scanAccount(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, accountservice.ErrAccountNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, accountservice.ErrConflict
		}
		return nil, fmt.Errorf("unexpected account repository update error: %w", err)
	}

	return ToDomain(accountModel), nil
}

// ApplyCounterDelta один аддитивный UPDATE. trips_per_day откатывается на 1
// при смене суток, last_trip_at хранит дату последней завершенной поездки.
func (r *Repository) ApplyCounterDelta(ctx context.Context, delta entities.CounterDelta) error {
	query := `
		UPDATE accounts
		SET total_sent_parcels = total_sent_parcels + $2,
			total_received_parcels = total_received_parcels + $3,
			total_orders = total_orders + $4,
			total_delivered = total_delivered + $5,
			total_earning = total_earning + $6,
			monthly_earnings = monthly_earnings + $7,
			total_amount_spent = total_amount_spent + $8,
			total_trips_completed = total_trips_completed + $9,
			trips_per_day = CASE
				WHEN NOT $10 THEN trips_per_day
				WHEN last_trip_at IS NOT NULL AND last_trip_at::date = CURRENT_DATE THEN trips_per_day + 1
				ELSE 1
			END,
			last_trip_at = CASE WHEN $10 THEN NOW() ELSE last_trip_at END,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(
		ctx,
		query,
		delta.AccountID,
		delta.TotalSentParcels,
		delta.TotalReceivedParcels,
		delta.TotalOrders,
		delta.TotalDelivered,
		delta.TotalEarning,
		delta.MonthlyEarnings,
		delta.TotalAmountSpent,
		delta.TotalTripsCompleted,
		delta.TripCompleted,
	)
	if err != nil {
		return fmt.Errorf("unexpected account repository counter delta error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return accountservice.ErrAccountNotFound
	}
	return nil
}

// ConsumeFreeDelivery условный декремент: false без ошибки когда квота ноль.
func (r *Repository) ConsumeFreeDelivery(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE accounts
		SET free_deliveries = free_deliveries - 1,
			updated_at = NOW()
		WHERE id = $1 AND free_deliveries > 0`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected account repository consume quota error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) AddReview(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error) {
	query := `
		INSERT INTO reviews (account_id, parcel_id, rater_id, rating, body)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''))
		RETURNING id, account_id, parcel_id, rater_id, rating, body, created_at`

	var reviewModel ReviewDB
	err := r.querier.QueryRow(
		ctx,
		query,
		reviewModifyEntity.AccountID,
		reviewModifyEntity.ParcelID,
		reviewModifyEntity.RaterID,
		reviewModifyEntity.Rating,
		reviewModifyEntity.Body,
	).Scan(
		&reviewModel.ID,
		&reviewModel.AccountID,
		&reviewModel.ParcelID,
		&reviewModel.RaterID,
		&reviewModel.Rating,
		&reviewModel.Body,
		&reviewModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, accountservice.ErrAccountNotFound
		}
		return nil, fmt.Errorf("unexpected account repository add review error: %w", err)
	}

	return ToReviewDomain(&reviewModel), nil
}

func (r *Repository) ListReviews(ctx context.Context, accountID int64) ([]entities.Review, error) {
	query := `
		SELECT id, account_id, parcel_id, rater_id, rating, body, created_at
		FROM reviews
		WHERE account_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("unexpected account repository list reviews error: %w", err)
	}
	defer rows.Close()

	reviewModels := make([]ReviewDB, 0, 8)
	for rows.Next() {
		var reviewModel ReviewDB
		err := rows.Scan(
			&reviewModel.ID,
			&reviewModel.AccountID,
			&reviewModel.ParcelID,
			&reviewModel.RaterID,
			&reviewModel.Rating,
			&reviewModel.Body,
			&reviewModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected account repository list reviews error: %w", err)
		}
		reviewModels = append(reviewModels, reviewModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected account repository list reviews error: %w", err)
	}

	return ToReviewDomainList(reviewModels), nil
}

func scanAccount(row pgx.Row) (*AccountDB, error) {
	var accountModel AccountDB
	err := row.Scan(
		&accountModel.ID,
		&accountModel.Name,
		&accountModel.Phone,
		&accountModel.Kind,
		&accountModel.FreeDeliveries,
		&accountModel.TotalSentParcels,
		&accountModel.TotalReceivedParcels,
		&accountModel.TotalOrders,
		&accountModel.TotalDelivered,
		&accountModel.TotalEarning,
		&accountModel.MonthlyEarnings,
		&accountModel.TotalAmountSpent,
		&accountModel.TripsPerDay,
		&accountModel.TotalTripsCompleted,
		&accountModel.CreatedAt,
		&accountModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &accountModel, nil
}

package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"parcel-service/internal/entities"
	"parcel-service/internal/repository"
	parcelservice "parcel-service/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, sender_id, receiver_id, assigned_deliverer_id, title,
		pickup_address, pickup_latitude, pickup_longitude,
		dropoff_address, dropoff_latitude, dropoff_longitude,
		delivery_type, price, status, created_at, updated_at`

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

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	query := `
		INSERT INTO parcels (sender_id, title,
			pickup_address, pickup_latitude, pickup_longitude,
			dropoff_address, dropoff_latitude, dropoff_longitude,
			delivery_type, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + parcelColumns

	parcelModel, err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.SenderID,
		parcelModifyModel.Title,
		parcelModifyModel.PickupAddress,
		parcelModifyModel.PickupLatitude,
		parcelModifyModel.PickupLongitude,
		parcelModifyModel.DropoffAddress,
		parcelModifyModel.DropoffLatitude,
		parcelModifyModel.DropoffLongitude,
		parcelModifyModel.DeliveryType,
		parcelModifyModel.Price,
		parcelModifyModel.Status,
	))
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate берет блокировку строки на время транзакции, это guard
// всех мутаций state machine. FOR UPDATE исключает агрегаты, поэтому заявки
// дочитываются отдельным запросом уже под блокировкой.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *Repository) getOne(ctx context.Context, query string, id int64) (*entities.Parcel, error) {
	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcelservice.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository get error: %w", err)
	}

	requests, err := r.ListDeliveryRequests(ctx, parcelModel.ID)
	if err != nil {
		return nil, err
	}
	parcelModel.DeliveryRequests = requests

	return ToDomain(parcelModel), nil
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	// опциональные поля
	if parcelModifyModel.ReceiverID != nil {
		builder = builder.Set("receiver_id", parcelModifyModel.ReceiverID)
	}
	if parcelModifyModel.AssignedDelivererID != nil {
		builder = builder.Set("assigned_deliverer_id", parcelModifyModel.AssignedDelivererID)
	}
	if parcelModifyModel.Title != nil {
		builder = builder.Set("title", parcelModifyModel.Title)
	}
	if parcelModifyModel.PickupAddress != nil {
		builder = builder.
			Set("pickup_address", parcelModifyModel.PickupAddress).
			Set("pickup_latitude", parcelModifyModel.PickupLatitude).
			Set("pickup_longitude", parcelModifyModel.PickupLongitude)
	}
	if parcelModifyModel.DropoffAddress != nil {
		builder = builder.
			Set("dropoff_address", parcelModifyModel.DropoffAddress).
			Set("dropoff_latitude", parcelModifyModel.DropoffLatitude).
			Set("dropoff_longitude", parcelModifyModel.DropoffLongitude)
	}
	if parcelModifyModel.DeliveryType != nil {
		builder = builder.Set("delivery_type", parcelModifyModel.DeliveryType)
	}
	if parcelModifyModel.Price != nil {
		builder = builder.Set("price", parcelModifyModel.Price)
	}
	if parcelModifyModel.Status != nil {
		builder = builder.Set("status", parcelModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcelservice.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	requests, err := r.ListDeliveryRequests(ctx, parcelModel.ID)
	if err != nil {
		return nil, err
	}
	parcelModel.DeliveryRequests = requests

	return ToDomain(parcelModel), nil
}

// ClearAssignment снимает назначение одним UPDATE: NULL через Modify-указатели
// не выразить, поэтому явный запрос.
func (r *Repository) ClearAssignment(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `
		UPDATE parcels
		SET assigned_deliverer_id = NULL,
			receiver_id = NULL,
			status = 'pending',
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + parcelColumns

	parcelModel, err := scanParcel(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcelservice.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository clear assignment error: %w", err)
	}

	return ToDomain(parcelModel), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM parcels WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parcelservice.ErrParcelNotFound
	}
	return nil
}

// AddDeliveryRequest возвращает false без ошибки если заявка уже есть,
// множество заявок идемпотентно по (parcel_id, deliverer_id).
func (r *Repository) AddDeliveryRequest(ctx context.Context, parcelID, delivererID int64) (bool, error) {
	query := `
		INSERT INTO parcel_requests (parcel_id, deliverer_id)
		VALUES ($1, $2)
		ON CONFLICT (parcel_id, deliverer_id) DO NOTHING`

	result, err := r.querier.Exec(ctx, query, parcelID, delivererID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return false, parcelservice.ErrParcelNotFound
		}
		return false, fmt.Errorf("unexpected parcel repository add request error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) RemoveDeliveryRequest(ctx context.Context, parcelID, delivererID int64) (bool, error) {
	query := `DELETE FROM parcel_requests WHERE parcel_id = $1 AND deliverer_id = $2`

	result, err := r.querier.Exec(ctx, query, parcelID, delivererID)
	if err != nil {
		return false, fmt.Errorf("unexpected parcel repository remove request error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ClearDeliveryRequests(ctx context.Context, parcelID int64) error {
	query := `DELETE FROM parcel_requests WHERE parcel_id = $1`

	_, err := r.querier.Exec(ctx, query, parcelID)
	if err != nil {
		return fmt.Errorf("unexpected parcel repository clear requests error: %w", err)
	}
	return nil
}

func (r *Repository) ListDeliveryRequests(ctx context.Context, parcelID int64) ([]int64, error) {
	query := `
		SELECT deliverer_id
		FROM parcel_requests
		WHERE parcel_id = $1
		ORDER BY created_at, deliverer_id`

	rows, err := r.querier.Query(ctx, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list requests error: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0, 4)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list requests error: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list requests error: %w", err)
	}

	return ids, nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.Parcel, error) {
	query := listQuery + `
		WHERE p.status IN ('pending', 'requested')
		GROUP BY p.id
		ORDER BY p.id`

	return r.list(ctx, query)
}

func (r *Repository) ListBySender(ctx context.Context, senderID int64) ([]entities.Parcel, error) {
	query := listQuery + `
		WHERE p.sender_id = $1
		GROUP BY p.id
		ORDER BY p.id`

	return r.list(ctx, query, senderID)
}

func (r *Repository) ListByAssignedDeliverer(ctx context.Context, delivererID int64) ([]entities.Parcel, error) {
	query := listQuery + `
		WHERE p.assigned_deliverer_id = $1
		GROUP BY p.id
		ORDER BY p.id`

	return r.list(ctx, query, delivererID)
}

func (r *Repository) ListByRequestMember(ctx context.Context, delivererID int64) ([]entities.Parcel, error) {
	query := listQuery + `
		WHERE p.id IN (SELECT parcel_id FROM parcel_requests WHERE deliverer_id = $1)
		GROUP BY p.id
		ORDER BY p.id`

	return r.list(ctx, query, delivererID)
}

func (r *Repository) CountActiveByDeliverer(ctx context.Context, delivererID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM parcels
		WHERE assigned_deliverer_id = $1 AND status = 'in_transit'`

	var count int64
	err := r.querier.QueryRow(ctx, query, delivererID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count active error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountOpenRequestsByDeliverer(ctx context.Context, delivererID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM parcel_requests pr
		JOIN parcels p ON p.id = pr.parcel_id
		WHERE pr.deliverer_id = $1 AND p.status = 'requested'`

	var count int64
	err := r.querier.QueryRow(ctx, query, delivererID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count open requests error: %w", err)
	}
	return count, nil
}

const listQuery = `
	SELECT p.id, p.sender_id, p.receiver_id, p.assigned_deliverer_id, p.title,
		p.pickup_address, p.pickup_latitude, p.pickup_longitude,
		p.dropoff_address, p.dropoff_latitude, p.dropoff_longitude,
		p.delivery_type, p.price, p.status, p.created_at, p.updated_at,
		COALESCE(array_agg(pr.deliverer_id ORDER BY pr.deliverer_id)
			FILTER (WHERE pr.deliverer_id IS NOT NULL), '{}') AS delivery_requests
	FROM parcels p
	LEFT JOIN parcel_requests pr ON pr.parcel_id = p.id`

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Parcel, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		err := rows.Scan(
			&parcelModel.ID,
			&parcelModel.SenderID,
			&parcelModel.ReceiverID,
			&parcelModel.AssignedDelivererID,
			&parcelModel.Title,
			&parcelModel.PickupAddress,
			&parcelModel.PickupLatitude,
			&parcelModel.PickupLongitude,
			&parcelModel.DropoffAddress,
			&parcelModel.DropoffLatitude,
			&parcelModel.DropoffLongitude,
			&parcelModel.DeliveryType,
			&parcelModel.Price,
			&parcelModel.Status,
			&parcelModel.CreatedAt,
			&parcelModel.UpdatedAt,
			&parcelModel.DeliveryRequests,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func scanParcel(row pgx.Row) (*ParcelDB, error) {
	var parcelModel ParcelDB
	err := row.Scan(
		&parcelModel.ID,
		&parcelModel.SenderID,
		&parcelModel.ReceiverID,
		&parcelModel.AssignedDelivererID,
		&parcelModel.Title,
		&parcelModel.PickupAddress,
		&parcelModel.PickupLatitude,
		&parcelModel.PickupLongitude,
		&parcelModel.DropoffAddress,
		&parcelModel.DropoffLatitude,
		&parcelModel.DropoffLongitude,
		&parcelModel.DeliveryType,
		&parcelModel.Price,
		&parcelModel.Status,
		&parcelModel.CreatedAt,
		&parcelModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &parcelModel, nil
}

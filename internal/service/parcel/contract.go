//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	// GetByIDForUpdate берет блокировку строки посылки, сериализуя все
	// конкурентные мутации одной посылки до конца транзакции.
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Parcel, error)
	Update(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	ClearAssignment(ctx context.Context, id int64) (*entities.Parcel, error)
	Delete(ctx context.Context, id int64) error

	AddDeliveryRequest(ctx context.Context, parcelID, delivererID int64) (bool, error)
	RemoveDeliveryRequest(ctx context.Context, parcelID, delivererID int64) (bool, error)
	ClearDeliveryRequests(ctx context.Context, parcelID int64) error
	ListDeliveryRequests(ctx context.Context, parcelID int64) ([]int64, error)

	ListAvailable(ctx context.Context) ([]entities.Parcel, error)
	ListBySender(ctx context.Context, senderID int64) ([]entities.Parcel, error)
	ListByAssignedDeliverer(ctx context.Context, delivererID int64) ([]entities.Parcel, error)
	ListByRequestMember(ctx context.Context, delivererID int64) ([]entities.Parcel, error)
}

type AccountService interface {
	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
	ApplyCounterDelta(ctx context.Context, delta entities.CounterDelta) error
	ConsumeFreeDelivery(ctx context.Context, accountID int64) (bool, error)
	AddReview(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error)
}

type Geocoder interface {
	Resolve(ctx context.Context, address string) (*entities.Location, error)
}

// Outbox пишет доменное событие в той же транзакции что и мутация посылки.
type Outbox interface {
	Append(ctx context.Context, eventModify entities.ParcelEventModify) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

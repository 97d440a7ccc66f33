//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_test
package account

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Account, error)
	Update(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error)
	ApplyCounterDelta(ctx context.Context, delta entities.CounterDelta) error
	ConsumeFreeDelivery(ctx context.Context, id int64) (bool, error)
	AddReview(ctx context.Context, reviewModifyEntity entities.ReviewModify) (*entities.Review, error)
	ListReviews(ctx context.Context, accountID int64) ([]entities.Review, error)
}

// ParcelStats живые агрегаты по посылкам, из них вычисляется posture.
type ParcelStats interface {
	CountActiveByDeliverer(ctx context.Context, delivererID int64) (int64, error)
	CountOpenRequestsByDeliverer(ctx context.Context, delivererID int64) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

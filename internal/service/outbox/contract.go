//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"

	"parcel-service/internal/entities"
)

type Repository interface {
	ListUnsent(ctx context.Context, limit int64) ([]entities.ParcelEvent, error)
	MarkSent(ctx context.Context, ids []int64) error
}

type Producer interface {
	Send(key string, value []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_get_test
package account_get

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
	GetAccount(ctx context.Context, id int64) (*entities.Account, error)
	GetPosture(ctx context.Context, accountID int64) (entities.PostureType, error)
	ListReviews(ctx context.Context, accountID int64) ([]entities.Review, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_post_test
package account_post

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
	CreateAccount(ctx context.Context, accountModifyEntity entities.AccountModify) (int64, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=account_put_test
package account_put

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
	UpdateAccount(ctx context.Context, accountModifyEntity entities.AccountModify) (*entities.Account, error)
}

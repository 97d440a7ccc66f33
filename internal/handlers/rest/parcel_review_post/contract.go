//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_review_post_test
package parcel_review_post

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
	PostReview(ctx context.Context, caller entities.Caller, parcelID, targetAccountID int64, rating int32, body string) (*entities.Review, error)
}

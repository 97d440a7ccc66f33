package account

import (
	"context"
	"fmt"

	"parcel-service/internal/entities"
)

type Account struct {
	repository  Repository
	parcelStats ParcelStats
	txManager   TxManager
}

func New(repository Repository, parcelStats ParcelStats, txManager TxManager) *Account {
	return &Account{
		repository:  repository,
		parcelStats: parcelStats,
		txManager:   txManager,
	}
}

func (s *Account) CreateAccount(ctx context.Context, accountModify entities.AccountModify) (int64, error) {
	if accountModify.Name == nil ||
		accountModify.Phone == nil ||
		accountModify.Kind == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*accountModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*accountModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidKind(*accountModify.Kind) {
		return 0, ErrInvalidKind
	}
	if accountModify.FreeDeliveries != nil && *accountModify.FreeDeliveries < 0 {
		return 0, ErrInvalidFreeDeliveries
	}

	id, err := s.repository.Create(ctx, accountModify)
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}

	return id, nil
}

func (s *Account) UpdateAccount(ctx context.Context, accountModify entities.AccountModify) (*entities.Account, error) {
	if accountModify.ID == nil || !isValidID(*accountModify.ID) {
		return nil, ErrInvalidAccountID
	}
	if accountModify.Name == nil &&
		accountModify.Phone == nil &&
		accountModify.FreeDeliveries == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if accountModify.Name != nil && !isValidName(*accountModify.Name) {
		return nil, ErrInvalidName
	}
	if accountModify.Phone != nil && !isValidPhone(*accountModify.Phone) {
		return nil, ErrInvalidPhone
	}
	// Kind фиксирован при создании, через update не меняется.
	if accountModify.Kind != nil {
		return nil, ErrInvalidKind
	}
	if accountModify.FreeDeliveries != nil && *accountModify.FreeDeliveries < 0 {
		return nil, ErrInvalidFreeDeliveries
	}

	updated, err := s.repository.Update(ctx, accountModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return updated, nil
}

func (s *Account) GetAccount(ctx context.Context, id int64) (*entities.Account, error) {
	if !isValidID(id) {
		return nil, ErrInvalidAccountID
	}

	acc, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return acc, nil
}

// ApplyCounterDelta один аддитивный UPDATE, вызывается из транзакций
// matching engine под блокировкой строки посылки.
func (s *Account) ApplyCounterDelta(ctx context.Context, delta entities.CounterDelta) error {
	if !isValidID(delta.AccountID) {
		return ErrInvalidAccountID
	}

	if err := s.repository.ApplyCounterDelta(ctx, delta); err != nil {
		return fmt.Errorf("apply counter delta: %w", err)
	}
	return nil
}

// ConsumeFreeDelivery условный декремент квоты, false когда квота уже ноль.
func (s *Account) ConsumeFreeDelivery(ctx context.Context, id int64) (bool, error) {
	if !isValidID(id) {
		return false, ErrInvalidAccountID
	}

	consumed, err := s.repository.ConsumeFreeDelivery(ctx, id)
	if err != nil {
		return false, fmt.Errorf("consume free delivery: %w", err)
	}
	return consumed, nil
}

func (s *Account) AddReview(ctx context.Context, reviewModify entities.ReviewModify) (*entities.Review, error) {
	if reviewModify.AccountID == nil ||
		reviewModify.ParcelID == nil ||
		reviewModify.RaterID == nil ||
		reviewModify.Rating == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidID(*reviewModify.AccountID) || !isValidID(*reviewModify.RaterID) {
		return nil, ErrInvalidAccountID
	}
	if !isValidRating(*reviewModify.Rating) {
		return nil, ErrInvalidRating
	}

	review, err := s.repository.AddReview(ctx, reviewModify)
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	return review, nil
}

func (s *Account) ListReviews(ctx context.Context, accountID int64) ([]entities.Review, error) {
	if !isValidID(accountID) {
		return nil, ErrInvalidAccountID
	}

	reviews, err := s.repository.ListReviews(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// GetPosture вычисляет "роль в моменте" по живым посылкам аккаунта:
// есть назначение — delivering, есть открытая заявка — requesting, иначе idle.
func (s *Account) GetPosture(ctx context.Context, accountID int64) (entities.PostureType, error) {
	if !isValidID(accountID) {
		return "", ErrInvalidAccountID
	}

	if _, err := s.repository.GetByID(ctx, accountID); err != nil {
		return "", fmt.Errorf("failed to get account: %w", err)
	}

	active, err := s.parcelStats.CountActiveByDeliverer(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("count active parcels: %w", err)
	}
	if active > 0 {
		return entities.PostureDelivering, nil
	}

	open, err := s.parcelStats.CountOpenRequestsByDeliverer(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("count open requests: %w", err)
	}
	if open > 0 {
		return entities.PostureRequesting, nil
	}

	return entities.PostureIdle, nil
}

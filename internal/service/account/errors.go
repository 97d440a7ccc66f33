package account

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAccountID      = errors.New("invalid account id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidKind           = errors.New("invalid account kind")
	ErrInvalidRating         = errors.New("invalid rating")
	ErrInvalidFreeDeliveries = errors.New("invalid free deliveries quota")

	ErrAccountNotFound = errors.New("account not found")
	ErrConflict        = errors.New("resource already exists")
)

package notification

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAccountID      = errors.New("invalid account id")
	ErrUndefinedEventKind    = errors.New("undefined parcel event kind")
	ErrPushUnavailable       = errors.New("push provider unavailable")
)

package parcel

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidParcelID       = errors.New("invalid parcel id")
	ErrInvalidAccountID      = errors.New("invalid account id")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidDeliveryType   = errors.New("invalid delivery type")
	ErrInvalidStatus         = errors.New("invalid target status")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrSelfDelivery          = errors.New("sender cannot deliver own parcel")

	ErrParcelNotFound = errors.New("parcel not found")

	ErrNotParcelOwner       = errors.New("caller is not the parcel sender")
	ErrNotAssignedDeliverer = errors.New("caller is not the assigned deliverer")
	ErrNotParcelParty       = errors.New("account is not a party to the parcel")

	ErrParcelStateConflict = errors.New("parcel status does not allow the operation")
	ErrAlreadyRequested    = errors.New("delivery already requested for this parcel")
	ErrNotRequested        = errors.New("deliverer has no open request for this parcel")

	ErrGeocodingUnavailable = errors.New("geocoding collaborator unavailable")
)

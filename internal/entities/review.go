package entities

import "time"

// Review отзыв по доставленной посылке, прикрепляется к целевому аккаунту.
type Review struct {
	ID        int64
	AccountID int64
	ParcelID  int64
	RaterID   int64
	Rating    int32
	Body      string
	CreatedAt time.Time
}

type ReviewModify struct {
	AccountID *int64
	ParcelID  *int64
	RaterID   *int64
	Rating    *int32
	Body      *string
}

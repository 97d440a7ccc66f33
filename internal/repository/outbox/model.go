package outbox

import "time"

type ParcelEventDB struct {
	ID              int64
	Kind            string
	RecipientID     int64
	ParcelID        int64
	ParcelTitle     string
	Price           float64
	CounterpartName string
	CreatedAt       time.Time
	SentAt          *time.Time
}

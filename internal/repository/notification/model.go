package notification

import "time"

type NotificationDB struct {
	ID          int64
	RecipientID int64
	Kind        string
	ParcelID    int64
	Title       string
	Body        string
	CreatedAt   time.Time
}

package entities

import "time"

// ParcelEventKind виды доменных событий matching engine.
type ParcelEventKind string

const (
	EventRequested ParcelEventKind = "requested"
	EventAssigned  ParcelEventKind = "assigned"
	EventRejected  ParcelEventKind = "rejected"
	EventCancelled ParcelEventKind = "cancelled"
	EventDelivered ParcelEventKind = "delivered"
)

func (k ParcelEventKind) String() string {
	return string(k)
}

// ParcelEvent запись outbox: пишется в той же транзакции что и мутация
// посылки, релей публикует ее в Kafka уже после коммита.
type ParcelEvent struct {
	ID              int64
	Kind            ParcelEventKind
	RecipientID     int64
	ParcelID        int64
	ParcelTitle     string
	Price           float64
	CounterpartName string
	CreatedAt       time.Time
	SentAt          *time.Time
}

type ParcelEventModify struct {
	Kind            *ParcelEventKind
	RecipientID     *int64
	ParcelID        *int64
	ParcelTitle     *string
	Price           *float64
	CounterpartName *string
}

// Notification персистентная копия уведомления, которую пишет dispatch-воркер.
type Notification struct {
	ID          int64
	RecipientID int64
	Kind        ParcelEventKind
	ParcelID    int64
	Title       string
	Body        string
	CreatedAt   time.Time
}

type NotificationModify struct {
	RecipientID *int64
	Kind        *ParcelEventKind
	ParcelID    *int64
	Title       *string
	Body        *string
}

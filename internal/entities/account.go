package entities

import (
	"time"
)

type Account struct {
	ID             int64
	Name           string
	Phone          string
	Kind           AccountKindType
	FreeDeliveries int64
	Counters       AccountCounters
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountKindType фиксированная классификация аккаунта. В отличие от
// posture не меняется от транзакции к транзакции.
type AccountKindType string

const (
	KindSender    AccountKindType = "sender"
	KindDeliverer AccountKindType = "deliverer"
	KindAdmin     AccountKindType = "admin"
)

func (k AccountKindType) String() string {
	return string(k)
}

// AccountCounters агрегатные счетчики, растут монотонно (кроме удаления
// посылки отправителем и админского сброса, который вне этого сервиса).
type AccountCounters struct {
	TotalSentParcels     int64
	TotalReceivedParcels int64
	TotalOrders          int64
	TotalDelivered       int64
	TotalEarning         float64
	MonthlyEarnings      float64
	TotalAmountSpent     float64
	TripsPerDay          int64
	TotalTripsCompleted  int64
}

type AccountModify struct {
	ID             *int64
	Name           *string
	Phone          *string
	Kind           *AccountKindType
	FreeDeliveries *int64
}

// CounterDelta аддитивное изменение счетчиков, применяется одним UPDATE
// под тем же guard что и мутация посылки.
type CounterDelta struct {
	AccountID            int64
	TotalSentParcels     int64
	TotalReceivedParcels int64
	TotalOrders          int64
	TotalDelivered       int64
	TotalEarning         float64
	MonthlyEarnings      float64
	TotalAmountSpent     float64
	TotalTripsCompleted  int64
	TripCompleted        bool // инкремент trips_per_day с учетом смены суток
}

// PostureType вычисляемая "роль в моменте": считается по живым запросам
// и назначениям, никогда не персистится.
type PostureType string

const (
	PostureIdle       PostureType = "idle"
	PostureRequesting PostureType = "requesting"
	PostureDelivering PostureType = "delivering"
)

func (p PostureType) String() string {
	return string(p)
}

// Caller идентичность вызывающего, уже проверенная внешним auth-слоем.
type Caller struct {
	AccountID int64
	Kind      AccountKindType
}

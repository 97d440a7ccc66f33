package account

import "time"

type AccountDB struct {
	ID                   int64
	Name                 string
	Phone                string
	Kind                 string
	FreeDeliveries       int64
	TotalSentParcels     int64
	TotalReceivedParcels int64
	TotalOrders          int64
	TotalDelivered       int64
	TotalEarning         float64
	MonthlyEarnings      float64
	TotalAmountSpent     float64
	TripsPerDay          int64
	TotalTripsCompleted  int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type AccountModifyDB struct {
	ID             *int64
	Name           *string
	Phone          *string
	Kind           *string
	FreeDeliveries *int64
}

type ReviewDB struct {
	ID        int64
	AccountID int64
	ParcelID  int64
	RaterID   int64
	Rating    int32
	Body      string
	CreatedAt time.Time
}

package parcel

import "time"

type ParcelDB struct {
	ID                  int64
	SenderID            int64
	ReceiverID          *int64
	AssignedDelivererID *int64
	Title               string
	PickupAddress       string
	PickupLatitude      float64
	PickupLongitude     float64
	DropoffAddress      string
	DropoffLatitude     float64
	DropoffLongitude    float64
	DeliveryType        string
	Price               float64
	Status              string
	DeliveryRequests    []int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ParcelModifyDB struct {
	ID                  *int64
	SenderID            *int64
	ReceiverID          *int64
	AssignedDelivererID *int64
	Title               *string
	PickupAddress       *string
	PickupLatitude      *float64
	PickupLongitude     *float64
	DropoffAddress      *string
	DropoffLatitude     *float64
	DropoffLongitude    *float64
	DeliveryType        *string
	Price               *float64
	Status              *string
}

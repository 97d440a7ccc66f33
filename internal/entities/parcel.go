package entities

import (
	"time"
)

type Parcel struct {
	ID                  int64
	SenderID            int64
	ReceiverID          *int64
	AssignedDelivererID *int64
	Title               string
	Pickup              Location
	Dropoff             Location
	DeliveryType        DeliveryType
	Price               float64
	Status              ParcelStatusType
	DeliveryRequests    []int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Location геокодированная точка вместе с исходным адресом.
type Location struct {
	Address   string
	Latitude  float64
	Longitude float64
}

type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "pending"
	ParcelRequested ParcelStatusType = "requested"
	ParcelInTransit ParcelStatusType = "in_transit"
	ParcelDelivered ParcelStatusType = "delivered"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

// Terminal доставленная посылка больше не мутирует.
func (s ParcelStatusType) Terminal() bool {
	return s == ParcelDelivered
}

type DeliveryType string

const (
	DeliveryTruck    DeliveryType = "truck"
	DeliveryCar      DeliveryType = "car"
	DeliveryBicycle  DeliveryType = "bicycle"
	DeliveryBike     DeliveryType = "bike"
	DeliveryPerson   DeliveryType = "person"
	DeliveryTaxi     DeliveryType = "taxi"
	DeliveryAirplane DeliveryType = "airplane"
)

func (t DeliveryType) String() string {
	return string(t)
}

// ParcelDraft входные данные создания посылки, адреса еще не геокодированы.
type ParcelDraft struct {
	Title          string
	PickupAddress  string
	DropoffAddress string
	DeliveryType   DeliveryType
	Price          float64
}

type ParcelModify struct {
	ID                  *int64
	SenderID            *int64
	ReceiverID          *int64
	AssignedDelivererID *int64
	Title               *string
	Pickup              *Location
	Dropoff             *Location
	DeliveryType        *DeliveryType
	Price               *float64
	Status              *ParcelStatusType
}

// ParcelAssignment результат назначения исполнителя отправителем.
type ParcelAssignment struct {
	ParcelID    int64
	SenderID    int64
	DelivererID int64
	Status      ParcelStatusType
	AssignedAt  time.Time
}

// DeliveryRequestResult поштучный итог batch-заявки RequestToDeliver.
type DeliveryRequestResult struct {
	ParcelID int64
	Status   ParcelStatusType
	Err      error
}

package parcel

import (
	"strings"

	"parcel-service/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidPrice(price float64) bool {
	return price >= 0
}

func isValidRating(rating int32) bool {
	return rating >= 1 && rating <= 5
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidDeliveryType(t entities.DeliveryType) bool {
	switch t {
	case entities.DeliveryTruck,
		entities.DeliveryCar,
		entities.DeliveryBicycle,
		entities.DeliveryBike,
		entities.DeliveryPerson,
		entities.DeliveryTaxi,
		entities.DeliveryAirplane:
		return true
	default:
		return false
	}
}

func isValidAdvanceTarget(s entities.ParcelStatusType) bool {
	return s == entities.ParcelInTransit || s == entities.ParcelDelivered
}

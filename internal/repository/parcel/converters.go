package parcel

import (
	"parcel-service/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:                  p.ID,
		SenderID:            p.SenderID,
		ReceiverID:          p.ReceiverID,
		AssignedDelivererID: p.AssignedDelivererID,
		Title:               p.Title,
		Pickup: entities.Location{
			Address:   p.PickupAddress,
			Latitude:  p.PickupLatitude,
			Longitude: p.PickupLongitude,
		},
		Dropoff: entities.Location{
			Address:   p.DropoffAddress,
			Latitude:  p.DropoffLatitude,
			Longitude: p.DropoffLongitude,
		},
		DeliveryType:     entities.DeliveryType(p.DeliveryType),
		Price:            p.Price,
		Status:           entities.ParcelStatusType(p.Status),
		DeliveryRequests: p.DeliveryRequests,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToDomainList(parcelModels []ParcelDB) []entities.Parcel {
	parcels := make([]entities.Parcel, 0, len(parcelModels))
	for i := range parcelModels {
		parcels = append(parcels, *ToDomain(&parcelModels[i]))
	}
	return parcels
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{}

	if parcelModify.ID != nil {
		parcelDB.ID = parcelModify.ID
	}
	if parcelModify.SenderID != nil {
		parcelDB.SenderID = parcelModify.SenderID
	}
	if parcelModify.ReceiverID != nil {
		parcelDB.ReceiverID = parcelModify.ReceiverID
	}
	if parcelModify.AssignedDelivererID != nil {
		parcelDB.AssignedDelivererID = parcelModify.AssignedDelivererID
	}
	if parcelModify.Title != nil {
		parcelDB.Title = parcelModify.Title
	}
	if parcelModify.Pickup != nil {
		parcelDB.PickupAddress = &parcelModify.Pickup.Address
		parcelDB.PickupLatitude = &parcelModify.Pickup.Latitude
		parcelDB.PickupLongitude = &parcelModify.Pickup.Longitude
	}
	if parcelModify.Dropoff != nil {
		parcelDB.DropoffAddress = &parcelModify.Dropoff.Address
		parcelDB.DropoffLatitude = &parcelModify.Dropoff.Latitude
		parcelDB.DropoffLongitude = &parcelModify.Dropoff.Longitude
	}
	if parcelModify.DeliveryType != nil {
		deliveryType := parcelModify.DeliveryType.String()
		parcelDB.DeliveryType = &deliveryType
	}
	if parcelModify.Price != nil {
		parcelDB.Price = parcelModify.Price
	}
	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}

	return parcelDB
}

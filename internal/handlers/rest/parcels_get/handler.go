package parcels_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/pkg/middlewares/identity"
	"parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
)

const (
	viewAvailable  = "available"
	viewSent       = "sent"
	viewDelivering = "delivering"
	viewRequested  = "requested"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает витрину доступных посылок либо срез вызывающего:
// отправленные им, взятые им в доставку, запрошенные им.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	view := r.URL.Query().Get("view")
	if view == "" {
		view = viewAvailable
	}

	var parcelEntities []entities.Parcel
	var err error

	switch view {
	case viewAvailable:
		parcelEntities, err = h.service.ListAvailable(r.Context())
	case viewSent:
		parcelEntities, err = h.service.ListBySender(r.Context(), caller.AccountID)
	case viewDelivering:
		parcelEntities, err = h.service.ListByDeliverer(r.Context(), caller.AccountID)
	case viewRequested:
		parcelEntities, err = h.service.ListRequestedBy(r.Context(), caller.AccountID)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidAccountID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Parcel, 0, len(parcelEntities))
	for i := range parcelEntities {
		response = append(response, toParcelDTO(&parcelEntities[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toParcelDTO(parcelEntity *entities.Parcel) dto.Parcel {
	return dto.Parcel{
		ID:                  parcelEntity.ID,
		SenderID:            parcelEntity.SenderID,
		ReceiverID:          parcelEntity.ReceiverID,
		AssignedDelivererID: parcelEntity.AssignedDelivererID,
		Title:               parcelEntity.Title,
		PickupAddress:       parcelEntity.Pickup.Address,
		PickupLatitude:      parcelEntity.Pickup.Latitude,
		PickupLongitude:     parcelEntity.Pickup.Longitude,
		DropoffAddress:      parcelEntity.Dropoff.Address,
		DropoffLatitude:     parcelEntity.Dropoff.Latitude,
		DropoffLongitude:    parcelEntity.Dropoff.Longitude,
		DeliveryType:        parcelEntity.DeliveryType.String(),
		Price:               parcelEntity.Price,
		Status:              parcelEntity.Status.String(),
		DeliveryRequests:    parcelEntity.DeliveryRequests,
	}
}

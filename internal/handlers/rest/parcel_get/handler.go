package parcel_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrInvalidParcelID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toParcelDTO(parcelEntity)

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

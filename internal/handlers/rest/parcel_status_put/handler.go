package parcel_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/pkg/middlewares/identity"
	accountservice "parcel-service/internal/service/account"
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
	caller, ok := identity.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	parcelID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.ParcelStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.AdvanceStatus(r.Context(), caller, parcelID, entities.ParcelStatusType(statusDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound),
			errors.Is(err, accountservice.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrNotAssignedDeliverer):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrParcelStateConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toParcelDTO(updated)

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

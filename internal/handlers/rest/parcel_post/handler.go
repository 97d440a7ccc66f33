package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var parcelCreateDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.ParcelDraft{
		Title:          parcelCreateDTO.Title,
		PickupAddress:  parcelCreateDTO.PickupAddress,
		DropoffAddress: parcelCreateDTO.DropoffAddress,
		DeliveryType:   entities.DeliveryType(parcelCreateDTO.DeliveryType),
		Price:          parcelCreateDTO.Price,
	}

	created, err := h.service.CreateParcel(r.Context(), caller, draft)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidAccountID),
			errors.Is(err, parcel.ErrInvalidPrice),
			errors.Is(err, parcel.ErrInvalidDeliveryType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, accountservice.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrGeocodingUnavailable):
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toParcelDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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

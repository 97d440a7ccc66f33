package parcel_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	var assignDTO dto.ParcelAssignRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignDeliverer(r.Context(), caller, parcelID, assignDTO.DelivererID)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID),
			errors.Is(err, parcel.ErrInvalidAccountID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound),
			errors.Is(err, accountservice.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrNotParcelOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrParcelStateConflict),
			errors.Is(err, parcel.ErrNotRequested):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ParcelAssignResponse{
		ParcelID:    assignment.ParcelID,
		SenderID:    assignment.SenderID,
		DelivererID: assignment.DelivererID,
		Status:      assignment.Status.String(),
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

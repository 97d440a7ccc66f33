package parcel_requests_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

// ServeHTTP принимает пачку id посылок, результат отдается поштучно:
// часть заявок может пройти, часть упереться в конфликт.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var requestDTO dto.DeliveryRequestsCreate
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	results, err := h.service.RequestToDeliver(r.Context(), caller, requestDTO.ParcelIDs)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidAccountID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, accountservice.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryRequestsResponse{
		Results: make([]dto.DeliveryRequestResult, 0, len(results)),
	}
	for _, result := range results {
		resultDTO := dto.DeliveryRequestResult{
			ParcelID: result.ParcelID,
			Status:   result.Status.String(),
		}
		if result.Err != nil {
			resultDTO.Error = resultErrorCode(result.Err)
		}
		response.Results = append(response.Results, resultDTO)
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

func resultErrorCode(err error) string {
	switch {
	case errors.Is(err, parcel.ErrInvalidParcelID):
		return "invalid_parcel_id"
	case errors.Is(err, parcel.ErrParcelNotFound):
		return "not_found"
	case errors.Is(err, parcel.ErrSelfDelivery):
		return "self_delivery"
	case errors.Is(err, parcel.ErrAlreadyRequested):
		return "already_requested"
	case errors.Is(err, parcel.ErrParcelStateConflict):
		return "state_conflict"
	default:
		return "internal"
	}
}

package account_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/service/account"
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
	var accountCreateDTO dto.AccountCreate
	err := json.NewDecoder(r.Body).Decode(&accountCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	kind := entities.AccountKindType(accountCreateDTO.Kind)
	accountModifyEntity := entities.AccountModify{
		Name:           &accountCreateDTO.Name,
		Phone:          &accountCreateDTO.Phone,
		Kind:           &kind,
		FreeDeliveries: accountCreateDTO.FreeDeliveries,
	}

	id, err := h.service.CreateAccount(r.Context(), accountModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidName),
			errors.Is(err, account.ErrInvalidPhone),
			errors.Is(err, account.ErrInvalidKind),
			errors.Is(err, account.ErrInvalidFreeDeliveries):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AccountCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

package account_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/entities"
	"parcel-service/internal/generated/dto"
	"parcel-service/internal/pkg/middlewares/identity"
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

// ServeHTTP обновляет собственный аккаунт вызывающего.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := identity.CallerFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var accountUpdateDTO dto.AccountUpdate
	err := json.NewDecoder(r.Body).Decode(&accountUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accountModifyEntity := entities.AccountModify{
		ID:             &caller.AccountID,
		Name:           accountUpdateDTO.Name,
		Phone:          accountUpdateDTO.Phone,
		FreeDeliveries: accountUpdateDTO.FreeDeliveries,
	}

	updated, err := h.service.UpdateAccount(r.Context(), accountModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrMissingRequiredFields),
			errors.Is(err, account.ErrInvalidAccountID),
			errors.Is(err, account.ErrInvalidName),
			errors.Is(err, account.ErrInvalidPhone),
			errors.Is(err, account.ErrInvalidKind),
			errors.Is(err, account.ErrInvalidFreeDeliveries):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, account.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, account.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Account{
		ID:             updated.ID,
		Name:           updated.Name,
		Phone:          updated.Phone,
		Kind:           updated.Kind.String(),
		FreeDeliveries: updated.FreeDeliveries,
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

package notifications_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcel-service/internal/generated/dto"
	"parcel-service/internal/pkg/middlewares/identity"
	"parcel-service/internal/service/notification"
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

	notifications, err := h.service.ListNotifications(r.Context(), caller.AccountID)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidAccountID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Notification, 0, len(notifications))
	for _, notificationEntity := range notifications {
		response = append(response, dto.Notification{
			ID:       notificationEntity.ID,
			Kind:     notificationEntity.Kind.String(),
			ParcelID: notificationEntity.ParcelID,
			Title:    notificationEntity.Title,
			Body:     notificationEntity.Body,
		})
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

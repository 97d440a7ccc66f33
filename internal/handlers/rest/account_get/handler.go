package account_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

// ServeHTTP отдает аккаунт вместе с вычисленной posture и отзывами.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accountEntity, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, account.ErrInvalidAccountID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	posture, err := h.service.GetPosture(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	reviews, err := h.service.ListReviews(r.Context(), id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	accountDTO := dto.Account{
		ID:             accountEntity.ID,
		Name:           accountEntity.Name,
		Phone:          accountEntity.Phone,
		Kind:           accountEntity.Kind.String(),
		FreeDeliveries: accountEntity.FreeDeliveries,
		Posture:        posture.String(),
		Counters: dto.AccountCounters{
			TotalSentParcels:     accountEntity.Counters.TotalSentParcels,
			TotalReceivedParcels: accountEntity.Counters.TotalReceivedParcels,
			TotalOrders:          accountEntity.Counters.TotalOrders,
			TotalDelivered:       accountEntity.Counters.TotalDelivered,
			TotalEarning:         accountEntity.Counters.TotalEarning,
			MonthlyEarnings:      accountEntity.Counters.MonthlyEarnings,
			TotalAmountSpent:     accountEntity.Counters.TotalAmountSpent,
			TripsPerDay:          accountEntity.Counters.TripsPerDay,
			TotalTripsCompleted:  accountEntity.Counters.TotalTripsCompleted,
		},
		Reviews: make([]dto.Review, 0, len(reviews)),
	}
	for _, review := range reviews {
		accountDTO.Reviews = append(accountDTO.Reviews, dto.Review{
			ID:        review.ID,
			AccountID: review.AccountID,
			ParcelID:  review.ParcelID,
			RaterID:   review.RaterID,
			Rating:    review.Rating,
			Body:      review.Body,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(accountDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

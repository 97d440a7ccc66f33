package parcel_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcel-service/internal/pkg/middlewares/identity"
	"parcel-service/internal/service/parcel"
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
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.DeleteParcel(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrInvalidParcelID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrNotParcelOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, parcel.ErrParcelStateConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations"
)

const msgReservationNotFound = "бронирование не найдено"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	reservation, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("GET /reservations/%s - Internal error: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, reservation)
}

package delete_reservation

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

// Handle DELETE /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("DELETE /admin/reservations/%s - Internal error: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/reservations/%s - Reservation deleted", id)
	handlers.RespondNoContent(w)
}

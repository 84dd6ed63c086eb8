package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReservationNotFound = "бронирование не найдено"
	msgInvalidTransition   = "недопустимая смена статуса"
	msgInvalidStatus       = "некорректный статус"
	msgSlotNotAvailable    = "слот на эту дату уже занят другим бронированием"
)

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

// Handle PATCH /api/v1/admin/reservations/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/%s/status - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	reservation, err := h.service.UpdateStatus(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/reservations/%s/status - %v", id, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, reservations.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("PATCH /admin/reservations/%s/status - Internal error: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/%s/status - Status changed to %s", id, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}

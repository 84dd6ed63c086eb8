package create_manual_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные записи"
	msgInvalidSlot        = "неизвестный временной слот"
	msgSlotNotAvailable   = "выбранный слот на эту дату уже занят"
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

// Handle POST /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ManualReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	reservation, err := h.service.CreateManual(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrSlotNotAvailable):
			h.logger.Warn("POST /admin/reservations - Slot not available: date=%s, slot=%s", req.Date, req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)
		case errors.Is(err, reservations.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /admin/reservations - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations - Manual reservation created: id=%s", reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, reservation)
}

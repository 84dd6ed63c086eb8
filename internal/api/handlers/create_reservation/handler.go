package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-DetailingStudio/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDate        = "запись возможна только начиная с завтрашнего дня"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgInvalidSlot        = "неизвестный временной слот"
	msgEmptySelection     = "не выбрано ни одной доступной услуги"
	msgSlotNotAvailable   = "выбранный слот на эту дату уже занят"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		h.logger.Warn("POST /reservations - Validation failed: %v", fields)
		handlers.RespondValidationError(w, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: date=%s, slot=%s", req.Date, req.SlotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrEmptySelection):
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, date=%s, slot=%s",
		result.Reservation.ID, req.Date, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

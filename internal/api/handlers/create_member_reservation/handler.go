package create_member_reservation

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
	msgSlotNotAvailable   = "выбранный слот на эту дату уже занят"
	msgMemberNotFound     = "участник клуба с таким email не найден"
	msgNotEntitled        = "услуга не входит в вашу подписку"
)

type Handler struct {
	useCase MemberReservationUseCase
	logger  Logger
}

func NewHandler(useCase MemberReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/members/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MemberReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /members/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.ExecuteMember(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrMemberNotFound):
			h.logger.Warn("POST /members/reservations - Member not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, createReservation.ErrServiceNotEntitled):
			h.logger.Warn("POST /members/reservations - Not entitled: email=%s, services=%v", req.Email, req.Services)
			handlers.RespondError(w, http.StatusForbidden, msgNotEntitled)

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createReservation.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /members/reservations - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /members/reservations - Member reservation created: id=%s", result.Reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, fromUseCaseResponse(result))
}

package signup_member

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/members"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные заявки, проверьте уровень подписки"
	msgMemberExists       = "участник с таким email уже зарегистрирован"
)

type Handler struct {
	service MemberService
	logger  Logger
}

func NewHandler(service MemberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/members
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /members - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	result, err := h.service.Signup(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, members.ErrMemberExists):
			handlers.RespondConflict(w, msgMemberExists)
		case errors.Is(err, members.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /members - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /members - Member joined: id=%s, tier=%s", result.Member.ID, result.Member.Tier)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

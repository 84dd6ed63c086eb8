package get_member

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/members"
)

const (
	msgMissingEmail   = "параметр email обязателен"
	msgMemberNotFound = "участник клуба не найден"
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

// Handle GET /api/v1/members?email=...
// Вход в кабинет участника: уровень подписки и доступные услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	member, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, members.ErrMemberNotFound) {
			handlers.RespondNotFound(w, msgMemberNotFound)
			return
		}
		h.logger.Error("GET /members - Internal error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, member)
}

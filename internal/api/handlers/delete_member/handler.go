package delete_member

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/members"
)

const msgMemberNotFound = "участник клуба не найден"

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

// Handle DELETE /api/v1/admin/members/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, members.ErrMemberNotFound) {
			handlers.RespondNotFound(w, msgMemberNotFound)
			return
		}
		h.logger.Error("DELETE /admin/members/%s - Internal error: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/members/%s - Member deleted", id)
	handlers.RespondNoContent(w)
}

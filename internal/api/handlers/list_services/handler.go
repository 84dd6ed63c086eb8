package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
)

type Handler struct {
	service     CatalogService
	visibleOnly bool
	logger      Logger
}

// NewHandler visibleOnly: публичный каталог без скрытых услуг
func NewHandler(service CatalogService, visibleOnly bool, logger Logger) *Handler {
	return &Handler{
		service:     service,
		visibleOnly: visibleOnly,
		logger:      logger,
	}
}

// Handle GET /api/v1/services, GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.visibleOnly)
	if err != nil {
		h.logger.Error("GET %s - Internal error: %v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

package set_service_visibility

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceNotFound    = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/services/{name}/visibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req VisibilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	updated, err := h.service.SetVisibility(r.Context(), name, *req.IsVisible)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("PATCH /admin/services/%s/visibility - Internal error: %v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /admin/services/%s/visibility - isVisible=%t", name, updated.IsVisible)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

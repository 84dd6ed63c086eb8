package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceExists      = "услуга с таким названием уже существует"
	msgInvalidInput       = "некорректные данные услуги"
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

// Handle POST /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	created, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceExists):
			handlers.RespondConflict(w, msgServiceExists)
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /admin/services - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/services - Service created: %s", created.Name)
	handlers.RespondJSON(w, http.StatusCreated, created)
}

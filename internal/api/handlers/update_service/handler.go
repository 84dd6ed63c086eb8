package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceNotFound    = "услуга не найдена"
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

// Handle PUT /api/v1/admin/services/{name}
// Полная замена услуги, в том числе переименование
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/%s - Invalid request body: %v", name, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	updated, err := h.service.Update(r.Context(), name, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)
		case errors.Is(err, catalog.ErrServiceExists):
			handlers.RespondConflict(w, msgServiceExists)
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PUT /admin/services/%s - Internal error: %v", name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}

package delete_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog"
)

const msgServiceNotFound = "услуга не найдена"

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

// Handle DELETE /api/v1/admin/services/{name}
// Прошлые бронирования хранят названия услуг, поэтому удаление их не затрагивает
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.Delete(r.Context(), name); err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("DELETE /admin/services/%s - Internal error: %v", name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/services/%s - Service deleted", name)
	handlers.RespondNoContent(w)
}

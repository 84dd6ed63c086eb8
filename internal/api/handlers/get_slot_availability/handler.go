package get_slot_availability

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	getSlotAvailability "github.com/m04kA/SMC-DetailingStudio/internal/usecase/get_slot_availability"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase SlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotAvailability.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /slots - Failed to get availability for %s: %v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

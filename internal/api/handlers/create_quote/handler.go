package create_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DetailingStudio/internal/api/handlers"
	"github.com/m04kA/SMC-DetailingStudio/internal/usecase/quote"
	"github.com/m04kA/SMC-DetailingStudio/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "неизвестный временной слот"
	msgInvalidInput       = "некорректные данные для расчёта"
)

type Handler struct {
	useCase QuoteUseCase
	logger  Logger
}

func NewHandler(useCase QuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := validator.Validate(&req); fields != nil {
		handlers.RespondValidationError(w, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		case errors.Is(err, quote.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /quotes - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

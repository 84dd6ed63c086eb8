package create_quote

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/usecase/quote"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req *quote.Request) (*quote.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

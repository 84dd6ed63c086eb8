package set_service_visibility

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/catalog/models"
)

type CatalogService interface {
	SetVisibility(ctx context.Context, name string, visible bool) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package catalog

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context, visibleOnly bool) ([]*domain.Service, error)
	GetByName(ctx context.Context, name string) (*domain.Service, error)
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, name string, service *domain.Service) (*domain.Service, error)
	SetVisibility(ctx context.Context, name string, visible bool) error
	Delete(ctx context.Context, name string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

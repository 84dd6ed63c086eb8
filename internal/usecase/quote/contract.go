package quote

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context, visibleOnly bool) ([]*domain.Service, error)
}

// MemberRepository интерфейс репозитория участников клуба
type MemberRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package members

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// MemberRepository интерфейс репозитория участников клуба
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context, visibleOnly bool) ([]*domain.Service, error)
}

// MemberRepository интерфейс репозитория участников клуба
type MemberRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчики бронирований
type MetricsRecorder interface {
	IncReservationCreated(status string)
	IncSlotConflict()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncReservationCreated(string) {}
func (noopMetrics) IncSlotConflict()             {}

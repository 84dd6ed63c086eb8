package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
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

// Notifier отправляет уведомления о новом бронировании клиенту и студии
type Notifier interface {
	Dispatch(ctx context.Context, summary domain.NotificationSummary) error
}

// MetricsRecorder счётчики бронирований
type MetricsRecorder interface {
	IncReservationCreated(status string)
	IncSlotConflict()
	IncNotificationFailed()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) IncReservationCreated(string) {}
func (noopMetrics) IncSlotConflict()             {}
func (noopMetrics) IncNotificationFailed()       {}

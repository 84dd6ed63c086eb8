package get_slot_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_manual_reservation

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
)

type ReservationService interface {
	CreateManual(ctx context.Context, req *models.CreateManualRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

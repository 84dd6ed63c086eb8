package get_slot_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// UseCase use case для получения занятости слотов
type UseCase struct {
	reservationRepo ReservationRepository
	grid            *booking.SlotGrid
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, grid *booking.SlotGrid, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		grid:            grid,
		logger:          logger,
	}
}

// Execute возвращает все слоты сетки на дату. Слот занят, если на него есть PENDING или CONFIRMED бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetSlotAvailability: date=%s", date.Format(domain.DateFormat))

	reservations, err := uc.reservationRepo.GetByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	slots := booking.SlotsForDate(date, uc.grid, reservations)

	taken := 0
	for _, s := range slots {
		if s.Taken {
			taken++
		}
	}
	uc.logger.Info("GetSlotAvailability: %d/%d slots taken on %s", taken, len(slots), date.Format(domain.DateFormat))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}

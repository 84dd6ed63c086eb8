package booking

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// IsSlotTaken возвращает true, если на дату и слот уже есть бронирование, которое держит слот
// (PENDING или CONFIRMED). Завершённые и отменённые бронирования слот освобождают.
//
// Проверка носит рекомендательный характер: окончательную гарантию даёт
// уникальный индекс хранилища при вставке
func IsSlotTaken(date time.Time, slotID string, reservations []*domain.Reservation) bool {
	for _, r := range reservations {
		if r == nil || !r.Status.BlocksSlot() {
			continue
		}
		if r.ScheduledSlot == slotID && domain.SameDay(r.ScheduledDate, date) {
			return true
		}
	}
	return false
}

// SlotsForDate отмечает занятые слоты сетки на указанную дату
func SlotsForDate(date time.Time, grid *SlotGrid, reservations []*domain.Reservation) []domain.SlotAvailability {
	slots := grid.All()
	result := make([]domain.SlotAvailability, len(slots))
	for i, slot := range slots {
		result[i] = domain.SlotAvailability{
			Slot:  slot,
			Taken: IsSlotTaken(date, slot.ID, reservations),
		}
	}
	return result
}

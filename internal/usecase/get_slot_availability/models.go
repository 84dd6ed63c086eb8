package get_slot_availability

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// Request запрос занятости слотов на дату
type Request struct {
	Date time.Time
}

// Response все слоты сетки на дату с отметкой занятости
type Response struct {
	Date  time.Time
	Slots []domain.SlotAvailability
}

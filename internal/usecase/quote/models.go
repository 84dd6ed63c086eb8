package quote

import "github.com/m04kA/SMC-DetailingStudio/internal/domain"

// Request предварительный расчёт стоимости без бронирования
type Request struct {
	Services []string
	SlotID   string // Пусто: без надбавки за слот
	Email    string // Пусто: без проверки участия в клубе
}

// Response расчёт стоимости
type Response struct {
	Items           []domain.LineItem
	Slot            *domain.TimeSlot
	Summary         domain.PriceSummary
	DiscountApplied bool
	CheckoutURL     string
}

package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/booking"
	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// Request онлайн-бронирование с сайта
type Request struct {
	CustomerName       string
	CustomerEmail      string
	VehicleDescription string
	Notes              string
	Services           []string  // Названия услуг из каталога
	Date               time.Time // Дата (без времени)
	SlotID             string    // Идентификатор слота, например "evening" или "10:00"
}

// MemberRequest бронирование из кабинета участника клуба (услуги входят в подписку)
type MemberRequest struct {
	Email              string
	VehicleDescription string
	Services           []string // Услуги из списка подписки
	Date               time.Time
	SlotID             string
}

// Response созданное бронирование и данные для оплаты предоплаты
type Response struct {
	Reservation     *domain.Reservation
	Items           []domain.LineItem
	Slot            domain.TimeSlot
	DiscountApplied bool
	CheckoutURL     string // Пусто для бронирований участников
}

// Settings настройки студии, с которыми работает usecase
type Settings struct {
	Grid                *booking.SlotGrid
	Policy              booking.Policy
	ServiceLinks        map[string]string // Ссылка на оплату по названию услуги
	StudioCheckoutURL   string
	NotificationTimeout time.Duration
}

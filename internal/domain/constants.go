package domain

const (
	// DefaultDepositPercent доля предоплаты от суммы услуг без скидки
	DefaultDepositPercent = 20
	// DefaultMemberDiscountPercent скидка участника Platinum на сумму услуг
	DefaultMemberDiscountPercent = 20
	// DefaultEveningSurcharge надбавка за вечерний слот
	DefaultEveningSurcharge = 50
)

const (
	MaxNotesLength        = 1000 // символов, не байт
	MaxServicesPerBooking = 20

	// MaxServicePrice потолок цены услуги в PLN; большие значения считаются ошибкой ввода
	MaxServicePrice = 1_000_000_000
)

const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
	Currency   = "PLN"
)

// BlockingStatuses статусы, занимающие слот
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// Окно записи: с завтрашнего дня на BookingHorizonDays дней вперёд
const BookingHorizonDays = 14

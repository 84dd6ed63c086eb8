package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrSlotNotAvailable возвращается, когда слот на эту дату уже занят
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidSlot возвращается для неизвестного идентификатора слота
	ErrInvalidSlot = errors.New("unknown time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

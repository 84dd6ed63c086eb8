package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом или сегодня
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата дальше окна записи
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrInvalidSlot возвращается для неизвестного идентификатора слота
	ErrInvalidSlot = errors.New("create_reservation: unknown time slot")

	// ErrEmptySelection возвращается, когда ни одна из выбранных услуг не найдена среди видимых
	ErrEmptySelection = errors.New("create_reservation: no bookable services selected")

	// ErrSlotNotAvailable возвращается, когда слот на эту дату уже занят
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrMemberNotFound возвращается, когда участник клуба с таким email не найден
	ErrMemberNotFound = errors.New("create_reservation: member not found")

	// ErrServiceNotEntitled возвращается, когда услуга не входит в подписку участника
	ErrServiceNotEntitled = errors.New("create_reservation: service is not included in membership tier")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

package quote

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote: invalid input data")

	// ErrInvalidSlot возвращается для неизвестного идентификатора слота
	ErrInvalidSlot = errors.New("quote: unknown time slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote: internal error")
)

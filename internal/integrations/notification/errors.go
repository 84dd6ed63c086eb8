package notification

import "errors"

var (
	// ErrRender ошибка подготовки письма
	ErrRender = errors.New("notification: failed to render message")

	// ErrSend ошибка отправки письма
	ErrSend = errors.New("notification: failed to send message")
)

package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// transitions допустимые переходы статусов.
// PENDING -> CONFIRMED -> COMPLETED, отмена возможна до завершения
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseReservationStatus конвертирует строку в статус
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("unknown reservation status %q", s)
	}
	return status, nil
}

// CanTransitionTo проверяет, разрешён ли переход в next
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BlocksSlot возвращает true, если бронирование с таким статусом занимает слот.
// Неподтверждённое бронирование тоже держит слот
func (s ReservationStatus) BlocksSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal возвращает true для конечных статусов
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Reservation бронирование студии детейлинга
type Reservation struct {
	ID                 string
	CustomerName       string
	CustomerEmail      string
	VehicleDescription string
	Notes              string

	// Снимок названий услуг на момент бронирования, не ссылка на каталог
	Services []string

	Status        ReservationStatus
	ScheduledDate time.Time
	ScheduledSlot string

	// Снимок расчёта стоимости на момент бронирования
	PriceSummary PriceSummary

	IsMemberBooking bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CancelledAt *time.Time
}

// NotificationSummary плоское представление бронирования для уведомлений
type NotificationSummary struct {
	CustomerName       string
	CustomerEmail      string
	VehicleDescription string
	Services           string
	ScheduledDate      string
	ScheduledSlot      string
	Total              int64
	Deposit            int64
	Balance            int64
	Notes              string
}

// NotificationSummary формирует данные для уведомления клиента и студии
func (r *Reservation) NotificationSummary() NotificationSummary {
	return NotificationSummary{
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		VehicleDescription: r.VehicleDescription,
		Services:           strings.Join(r.Services, ", "),
		ScheduledDate:      r.ScheduledDate.Format(DateFormat),
		ScheduledSlot:      r.ScheduledSlot,
		Total:              r.PriceSummary.Total,
		Deposit:            r.PriceSummary.Deposit,
		Balance:            r.PriceSummary.Balance,
		Notes:              r.Notes,
	}
}

// ReservationFilter фильтр списка бронирований
type ReservationFilter struct {
	StartDate *time.Time         // Начало периода (опционально)
	EndDate   *time.Time         // Конец периода (опционально)
	Status    *ReservationStatus // Фильтр по статусу (опционально)
	Email     *string            // Фильтр по email клиента (опционально)
}

// SameDay сравнивает даты без учёта времени
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время и переводит дату в UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

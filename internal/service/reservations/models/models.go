package models

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
)

// ManualEntryService услуга для ручных записей без выбора из каталога
const ManualEntryService = "Manual Entry"

// Request модели

// ListRequest фильтр списка бронирований
type ListRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *string
	Email     *string
}

// CreateManualRequest ручная запись, созданная сотрудником студии
type CreateManualRequest struct {
	CustomerName       string
	CustomerEmail      string // Необязательно
	VehicleDescription string
	Notes              string
	Services           []string // Пусто: ManualEntryService
	Date               time.Time
	SlotID             string
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string
}

// Response модели

// PriceSummaryResponse расчёт стоимости в PLN
type PriceSummaryResponse struct {
	Subtotal  int64  `json:"subtotal"`
	Discount  int64  `json:"discount"`
	Surcharge int64  `json:"surcharge"`
	Total     int64  `json:"total"`
	Deposit   int64  `json:"deposit"`
	Balance   int64  `json:"balance"`
	Currency  string `json:"currency"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                 string               `json:"id"`
	CustomerName       string               `json:"customerName"`
	CustomerEmail      string               `json:"customerEmail"`
	VehicleDescription string               `json:"vehicleDescription"`
	Notes              string               `json:"notes,omitempty"`
	Services           []string             `json:"services"`
	Status             string               `json:"status"`
	ScheduledDate      string               `json:"scheduledDate"` // "2025-10-15"
	ScheduledSlot      string               `json:"scheduledSlot"`
	Price              PriceSummaryResponse `json:"price"`
	IsMemberBooking    bool                 `json:"isMemberBooking"`
	CancelledAt        *string              `json:"cancelledAt,omitempty"` // RFC 3339
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainPriceSummary конвертирует расчёт стоимости в DTO
func FromDomainPriceSummary(p domain.PriceSummary) PriceSummaryResponse {
	return PriceSummaryResponse{
		Subtotal:  p.Subtotal,
		Discount:  p.Discount,
		Surcharge: p.Surcharge,
		Total:     p.Total,
		Deposit:   p.Deposit,
		Balance:   p.Balance,
		Currency:  domain.Currency,
	}
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	services := r.Services
	if services == nil {
		services = []string{}
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		VehicleDescription: r.VehicleDescription,
		Notes:              r.Notes,
		Services:           services,
		Status:             string(r.Status),
		ScheduledDate:      r.ScheduledDate.Format(domain.DateFormat),
		ScheduledSlot:      r.ScheduledSlot,
		Price:              FromDomainPriceSummary(r.PriceSummary),
		IsMemberBooking:    r.IsMemberBooking,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelled := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

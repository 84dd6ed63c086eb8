package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	reservationModels "github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-DetailingStudio/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CustomerName       string   `json:"customerName" validate:"required,max=200"`
	CustomerEmail      string   `json:"customerEmail" validate:"required,email,max=254"`
	VehicleDescription string   `json:"vehicleDescription" validate:"required,max=200"`
	Notes              string   `json:"notes" validate:"max=1000"`
	Services           []string `json:"services" validate:"required,min=1,max=20"`
	Date               string   `json:"date" validate:"required,datetime=2006-01-02"` // "2025-10-15"
	SlotID             string   `json:"slotId" validate:"required,max=50"`
}

// LineItemResponse позиция расчёта
type LineItemResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// SlotResponse слот записи
type SlotResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Window    string `json:"window"`
	Surcharge int64  `json:"surcharge"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation     reservationModels.ReservationResponse `json:"reservation"`
	Items           []LineItemResponse                    `json:"items"`
	Slot            SlotResponse                          `json:"slot"`
	DiscountApplied bool                                  `json:"discountApplied"`
	CheckoutURL     string                                `json:"checkoutUrl,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		VehicleDescription: r.VehicleDescription,
		Notes:              r.Notes,
		Services:           r.Services,
		Date:               date,
		SlotID:             r.SlotID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	items := make([]LineItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, LineItemResponse{Name: item.Name, Price: item.Price})
	}

	return &CreateReservationResponse{
		Reservation:     *reservationModels.FromDomainReservation(resp.Reservation),
		Items:           items,
		Slot:            FromDomainSlot(resp.Slot),
		DiscountApplied: resp.DiscountApplied,
		CheckoutURL:     resp.CheckoutURL,
	}
}

// FromDomainSlot конвертирует слот в DTO
func FromDomainSlot(s domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		Label:     s.Label,
		Window:    s.Window,
		Surcharge: s.Surcharge,
	}
}

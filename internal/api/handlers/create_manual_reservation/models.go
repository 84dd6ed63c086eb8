package create_manual_reservation

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	"github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
)

// ManualReservationRequest запись, внесённая сотрудником (телефон, визит в студию)
type ManualReservationRequest struct {
	CustomerName       string   `json:"customerName" validate:"required,max=200"`
	CustomerEmail      string   `json:"customerEmail" validate:"omitempty,email,max=254"`
	VehicleDescription string   `json:"vehicleDescription" validate:"required,max=200"`
	Notes              string   `json:"notes" validate:"max=1000"`
	Services           []string `json:"services" validate:"max=20"`
	Date               string   `json:"date" validate:"required,datetime=2006-01-02"`
	SlotID             string   `json:"slotId" validate:"required,max=50"`
}

func (r *ManualReservationRequest) ToServiceRequest() (*models.CreateManualRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateManualRequest{
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		VehicleDescription: r.VehicleDescription,
		Notes:              r.Notes,
		Services:           r.Services,
		Date:               date,
		SlotID:             r.SlotID,
	}, nil
}

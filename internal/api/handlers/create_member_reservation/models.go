package create_member_reservation

import (
	"time"

	"github.com/m04kA/SMC-DetailingStudio/internal/domain"
	reservationModels "github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-DetailingStudio/internal/usecase/create_reservation"
)

// MemberReservationRequest HTTP request model
type MemberReservationRequest struct {
	Email              string   `json:"email" validate:"required,email,max=254"`
	VehicleDescription string   `json:"vehicleDescription" validate:"required,max=200"`
	Services           []string `json:"services" validate:"required,min=1,max=20"`
	Date               string   `json:"date" validate:"required,datetime=2006-01-02"`
	SlotID             string   `json:"slotId" validate:"required,max=50"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MemberReservationRequest) ToUseCaseRequest() (*createReservation.MemberRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.MemberRequest{
		Email:              r.Email,
		VehicleDescription: r.VehicleDescription,
		Services:           r.Services,
		Date:               date,
		SlotID:             r.SlotID,
	}, nil
}

// Бронирование участника оплачено подпиской, поэтому в ответе нет расчёта и ссылки на оплату
func fromUseCaseResponse(resp *createReservation.Response) *reservationModels.ReservationResponse {
	return reservationModels.FromDomainReservation(resp.Reservation)
}

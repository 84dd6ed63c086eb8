package update_reservation_status

import "github.com/m04kA/SMC-DetailingStudio/internal/service/reservations/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,reservation_status"`
}

func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{Status: r.Status}
}

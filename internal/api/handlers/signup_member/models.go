package signup_member

import "github.com/m04kA/SMC-DetailingStudio/internal/service/members/models"

// SignupRequest HTTP request model
type SignupRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email,max=254"`
	Phone string `json:"phone" validate:"max=50"`
	Tier  string `json:"tier" validate:"required,max=100"` // "GOLD" или "Gold Membership"
}

func (r *SignupRequest) ToServiceRequest() *models.SignupRequest {
	return &models.SignupRequest{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Tier:  r.Tier,
	}
}

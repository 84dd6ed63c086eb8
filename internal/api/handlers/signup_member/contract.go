package signup_member

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/members/models"
)

type MemberService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.SignupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_member

import (
	"context"

	"github.com/m04kA/SMC-DetailingStudio/internal/service/members/models"
)

type MemberService interface {
	GetByEmail(ctx context.Context, email string) (*models.MemberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

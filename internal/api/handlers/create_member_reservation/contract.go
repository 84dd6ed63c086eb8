package create_member_reservation

import (
	"context"

	createReservation "github.com/m04kA/SMC-DetailingStudio/internal/usecase/create_reservation"
)

type MemberReservationUseCase interface {
	ExecuteMember(ctx context.Context, req *createReservation.MemberRequest) (*createReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_admin_appointment

import (
	"context"

	createAdminAppointment "psyscheduler/internal/usecase/create_admin_appointment"
)

type CreateAdminAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAdminAppointment.Request) (*createAdminAppointment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

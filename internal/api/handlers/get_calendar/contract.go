package get_calendar

import (
	"context"
	"time"

	"psyscheduler/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetCalendar(ctx context.Context, from, to time.Time) (models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

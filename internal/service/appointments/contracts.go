package appointments

import (
	"context"
	"time"

	"psyscheduler/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Count(ctx context.Context, filter domain.AppointmentsFilter) (int64, error)
	Update(ctx context.Context, id int64, update domain.AppointmentUpdate) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetRuleByWeekday(ctx context.Context, dayOfWeek int) (*domain.WorkingDayRule, error)
	GetNonWorkingDayByDate(ctx context.Context, date time.Time) (*domain.NonWorkingDay, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByIDOrTelegram(ctx context.Context, id int64) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

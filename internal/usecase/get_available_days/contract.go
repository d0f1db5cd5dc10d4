package get_available_days

import (
	"context"
	"time"

	"psyscheduler/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListRules(ctx context.Context) ([]*domain.WorkingDayRule, error)
	ListNonWorkingDays(ctx context.Context, from, to *time.Time) ([]*domain.NonWorkingDay, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetShortest(ctx context.Context) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

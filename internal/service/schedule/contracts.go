package schedule

import (
	"context"
	"time"

	"psyscheduler/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListRules(ctx context.Context) ([]*domain.WorkingDayRule, error)
	UpdateRule(ctx context.Context, id int64, rule *domain.WorkingDayRule) (*domain.WorkingDayRule, error)
	CreateNonWorkingDay(ctx context.Context, day *domain.NonWorkingDay) (*domain.NonWorkingDay, error)
	ListNonWorkingDays(ctx context.Context, from, to *time.Time) ([]*domain.NonWorkingDay, error)
	DeleteNonWorkingDay(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

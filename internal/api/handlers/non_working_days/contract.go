package non_working_days

import (
	"context"
	"time"

	"psyscheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateNonWorkingDay(ctx context.Context, req *models.CreateNonWorkingDayRequest) (*models.NonWorkingDayResponse, error)
	ListNonWorkingDays(ctx context.Context, from, to *time.Time) (*models.NonWorkingDayListResponse, error)
	DeleteNonWorkingDay(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

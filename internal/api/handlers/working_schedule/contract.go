package working_schedule

import (
	"context"

	"psyscheduler/internal/service/schedule/models"
)

type ScheduleService interface {
	ListRules(ctx context.Context) (*models.RuleListResponse, error)
	UpdateRule(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package support_requests

import (
	"context"

	"psyscheduler/internal/service/support/models"
)

type SupportService interface {
	Create(ctx context.Context, req *models.CreateSupportRequest) (*models.SupportResponse, error)
	GetByID(ctx context.Context, id int64) (*models.SupportResponse, error)
	List(ctx context.Context, req *models.ListSupportRequests) (*models.SupportListResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.SupportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

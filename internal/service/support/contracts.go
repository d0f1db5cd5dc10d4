package support

import (
	"context"

	"psyscheduler/internal/domain"
)

// SupportRepository интерфейс репозитория обращений в поддержку
type SupportRepository interface {
	Create(ctx context.Context, req *domain.SupportRequest) (*domain.SupportRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.SupportRequest, error)
	List(ctx context.Context, status *domain.SupportStatus, limit, offset int) ([]*domain.SupportRequest, error)
	Count(ctx context.Context, status *domain.SupportStatus) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SupportStatus) error
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

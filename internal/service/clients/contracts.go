package clients

import (
	"context"

	"psyscheduler/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByIDOrTelegram(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id int64, upd domain.ClientUpdate) (*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

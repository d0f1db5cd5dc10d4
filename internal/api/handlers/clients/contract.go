package clients

import (
	"context"

	"psyscheduler/internal/service/clients/models"
)

type ClientsService interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error)
	GetByID(ctx context.Context, id int64) (*models.ClientResponse, error)
	List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

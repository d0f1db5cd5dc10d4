package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"psyscheduler/internal/domain"
	clientRepo "psyscheduler/internal/infra/storage/client"
	"psyscheduler/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create создает клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: creating client name=%q", req.Name)

	if strings.TrimSpace(req.Name) == "" {
		s.logger.Warn("Create: name is required")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	client, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:        strings.TrimSpace(req.Name),
		TelegramID:  req.TelegramID,
		TgNickname:  req.TgNickname,
		PhoneNumber: req.PhoneNumber,
		Timezone:    req.Timezone,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created client id=%d", client.ID)
	return models.FromDomainClient(client), nil
}

// GetByID получает клиента по первичному ID либо по telegram ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%d", id)

	client, err := s.clientRepo.GetByIDOrTelegram(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}

// List возвращает страницу клиентов
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error) {
	s.logger.Info("List: fetching clients, page=%d", req.Page)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = domain.DefaultPageLimit
	}

	total, err := s.clientRepo.Count(ctx)
	if err != nil {
		s.logger.Error("List: failed to count clients: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	clients, err := s.clientRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		s.logger.Error("List: failed to list clients: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.ClientListResponse{
		Clients: models.FromDomainClientList(clients),
		Meta:    models.NewPaginationMeta(int(total), page, limit),
	}, nil
}

// Update частично обновляет клиента
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Update: updating client id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for client id=%d", id)
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	client, err := s.clientRepo.Update(ctx, id, domain.ClientUpdate{
		Name:        req.Name,
		TelegramID:  req.TelegramID,
		TgNickname:  req.TgNickname,
		PhoneNumber: req.PhoneNumber,
		Timezone:    req.Timezone,
	})
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated client id=%d", id)
	return models.FromDomainClient(client), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting client id=%d", id)

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted client id=%d", id)
	return nil
}

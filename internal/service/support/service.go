package support

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"psyscheduler/internal/domain"
	clientRepo "psyscheduler/internal/infra/storage/client"
	supportRepo "psyscheduler/internal/infra/storage/support"
	"psyscheduler/internal/service/support/models"
)

// Service сервис обращений клиентов в поддержку
type Service struct {
	supportRepo SupportRepository
	clientRepo  ClientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса поддержки
func NewService(supportRepo SupportRepository, clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		supportRepo: supportRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// Create создает обращение со статусом PENDING
// Идентификатор клиента принимает как первичный ID, так и telegram ID
func (s *Service) Create(ctx context.Context, req *models.CreateSupportRequest) (*models.SupportResponse, error) {
	s.logger.Info("Create: creating support request for client=%d", req.ClientID)

	if req.ClientID <= 0 {
		s.logger.Warn("Create: clientID must be positive")
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Description) == "" {
		s.logger.Warn("Create: description is required")
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	client, err := s.clientRepo.GetByIDOrTelegram(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Create: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Create: failed to resolve client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: Create - failed to resolve client: %v", ErrInternal, err)
	}

	created, err := s.supportRepo.Create(ctx, &domain.SupportRequest{
		ClientID:    client.ID,
		Description: strings.TrimSpace(req.Description),
		Status:      domain.SupportPending,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created support request id=%d", created.ID)
	return models.FromDomainSupportRequest(created), nil
}

// GetByID получает обращение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SupportResponse, error) {
	s.logger.Info("GetByID: fetching support request id=%d", id)

	req, err := s.supportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, supportRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: support request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for support request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSupportRequest(req), nil
}

// List возвращает страницу обращений, опционально отфильтрованных по статусу
func (s *Service) List(ctx context.Context, req *models.ListSupportRequests) (*models.SupportListResponse, error) {
	s.logger.Info("List: fetching support requests, status=%v", req.Status)

	var status *domain.SupportStatus
	if req.Status != nil {
		st := domain.SupportStatus(*req.Status)
		if !domain.ValidSupportStatus(st) {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = &st
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = domain.DefaultPageLimit
	}

	total, err := s.supportRepo.Count(ctx, status)
	if err != nil {
		s.logger.Error("List: failed to count support requests: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	requests, err := s.supportRepo.List(ctx, status, limit, (page-1)*limit)
	if err != nil {
		s.logger.Error("List: failed to list support requests: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.SupportListResponse{
		Requests: models.FromDomainSupportRequestList(requests),
		Meta:     models.NewPaginationMeta(int(total), page, limit),
	}, nil
}

// UpdateStatus переводит обращение в новый статус
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.SupportResponse, error) {
	s.logger.Info("UpdateStatus: updating support request id=%d to status=%s", id, req.Status)

	status := domain.SupportStatus(req.Status)
	if !domain.ValidSupportStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for support request id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if err := s.supportRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, supportRepo.ErrRequestNotFound) {
			s.logger.Warn("UpdateStatus: support request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("UpdateStatus: repository error for support request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.supportRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload support request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated support request id=%d", id)
	return models.FromDomainSupportRequest(updated), nil
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"psyscheduler/internal/domain"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
	"psyscheduler/internal/service/schedule/models"
)

// Service сервис управления рабочим расписанием: недельный шаблон
// рабочих часов и разовые нерабочие дни
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ListRules возвращает весь недельный шаблон рабочих часов
func (s *Service) ListRules(ctx context.Context) (*models.RuleListResponse, error) {
	s.logger.Info("ListRules: fetching working schedule")

	rules, err := s.scheduleRepo.ListRules(ctx)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// UpdateRule обновляет рабочие часы одного дня недели.
// День недели у правила изменить нельзя: шаблон всегда содержит
// по одному правилу на каждый из семи дней
func (s *Service) UpdateRule(ctx context.Context, id int64, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("UpdateRule: updating rule id=%d, hours=%d-%d, working=%t",
		id, req.StartHour, req.EndHour, req.IsWorking)

	if err := validateRuleHours(req); err != nil {
		s.logger.Warn("UpdateRule: validation failed for rule id=%d: %v", id, err)
		return nil, err
	}

	rules, err := s.scheduleRepo.ListRules(ctx)
	if err != nil {
		s.logger.Error("UpdateRule: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	var current *domain.WorkingDayRule
	for _, rule := range rules {
		if rule.ID == id {
			current = rule
			break
		}
	}
	if current == nil {
		s.logger.Warn("UpdateRule: rule id=%d not found", id)
		return nil, ErrRuleNotFound
	}

	updated, err := s.scheduleRepo.UpdateRule(ctx, id, &domain.WorkingDayRule{
		DayOfWeek: current.DayOfWeek,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		IsWorking: req.IsWorking,
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			return nil, ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error for rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRule: successfully updated rule id=%d", id)
	return models.FromDomainRule(updated), nil
}

// CreateNonWorkingDay создает разовый нерабочий день
func (s *Service) CreateNonWorkingDay(ctx context.Context, req *models.CreateNonWorkingDayRequest) (*models.NonWorkingDayResponse, error) {
	s.logger.Info("CreateNonWorkingDay: creating for date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		s.logger.Warn("CreateNonWorkingDay: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	day, err := s.scheduleRepo.CreateNonWorkingDay(ctx, &domain.NonWorkingDay{
		Date:   domain.StartOfDay(req.Date),
		Reason: reason,
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrNonWorkingDayExists) {
			s.logger.Warn("CreateNonWorkingDay: date %s already marked", req.Date.Format(domain.DateFormat))
			return nil, ErrNonWorkingDayExists
		}
		s.logger.Error("CreateNonWorkingDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateNonWorkingDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateNonWorkingDay: created id=%d", day.ID)
	return models.FromDomainNonWorkingDay(day), nil
}

// ListNonWorkingDays возвращает нерабочие дни, опционально ограниченные периодом
func (s *Service) ListNonWorkingDays(ctx context.Context, from, to *time.Time) (*models.NonWorkingDayListResponse, error) {
	s.logger.Info("ListNonWorkingDays: fetching non-working days")

	if from != nil && to != nil && to.Before(*from) {
		s.logger.Warn("ListNonWorkingDays: invalid range")
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	days, err := s.scheduleRepo.ListNonWorkingDays(ctx, from, to)
	if err != nil {
		s.logger.Error("ListNonWorkingDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListNonWorkingDays - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNonWorkingDayList(days), nil
}

// DeleteNonWorkingDay удаляет нерабочий день
func (s *Service) DeleteNonWorkingDay(ctx context.Context, id int64) error {
	s.logger.Info("DeleteNonWorkingDay: deleting id=%d", id)

	if err := s.scheduleRepo.DeleteNonWorkingDay(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrNonWorkingDayNotFound) {
			s.logger.Warn("DeleteNonWorkingDay: id=%d not found", id)
			return ErrNonWorkingDayNotFound
		}
		s.logger.Error("DeleteNonWorkingDay: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteNonWorkingDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteNonWorkingDay: successfully deleted id=%d", id)
	return nil
}

// validateRuleHours проверяет корректность рабочих часов
func validateRuleHours(req *models.UpdateRuleRequest) error {
	if req.StartHour < domain.MinHour || req.StartHour > domain.MaxHour {
		return fmt.Errorf("%w: startHour must be within %d..%d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}
	if req.EndHour < domain.MinHour || req.EndHour > domain.MaxHour {
		return fmt.Errorf("%w: endHour must be within %d..%d", ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}
	if req.IsWorking && req.StartHour >= req.EndHour {
		return fmt.Errorf("%w: startHour must be before endHour on a working day", ErrInvalidInput)
	}
	return nil
}

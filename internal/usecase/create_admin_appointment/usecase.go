package create_admin_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"psyscheduler/internal/domain"
	catalogRepo "psyscheduler/internal/infra/storage/catalog"
	clientRepo "psyscheduler/internal/infra/storage/client"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
)

// UseCase use case создания записи администратором с явным интервалом
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute валидирует и создает запись с явно заданным интервалом.
// Проверки рабочего дня те же, что и в клиентском сценарии, но запись
// размещается по переданному интервалу. Пересечение с существующими
// записями намеренно не проверяется: администратор может уплотнить день.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAdminAppointment: client=%d, service=%d, start=%s",
		req.ClientID, req.ServiceID, req.StartTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAdminAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем клиента: по первичному ID либо по telegram ID
	client, err := uc.clientRepo.GetByIDOrTelegram(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAdminAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAdminAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Разрешаем услугу
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAdminAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAdminAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 4. Проверки дня и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Правило рабочего дня
		rule, err := uc.scheduleRepo.GetRuleByWeekday(txCtx, domain.WeekdayIndex(req.StartTime))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
				uc.logger.Warn("CreateAdminAppointment: no working day rule for %s", req.StartTime.Format(domain.DateFormat))
				return ErrDayClosed
			}
			uc.logger.Error("CreateAdminAppointment: failed to get working day rule: %v", err)
			return fmt.Errorf("%w: failed to get working day rule: %v", ErrInternal, err)
		}
		if !rule.IsWorking {
			uc.logger.Warn("CreateAdminAppointment: day %s is marked non-working", req.StartTime.Format(domain.DateFormat))
			return ErrDayClosed
		}

		// 4.2. Разовый нерабочий день перекрывает недельный шаблон
		if _, err := uc.scheduleRepo.GetNonWorkingDayByDate(txCtx, req.StartTime); err == nil {
			uc.logger.Warn("CreateAdminAppointment: %s is a non-working day", req.StartTime.Format(domain.DateFormat))
			return ErrNonWorkingDay
		} else if !errors.Is(err, scheduleRepo.ErrNonWorkingDayNotFound) {
			uc.logger.Error("CreateAdminAppointment: failed to check non-working day: %v", err)
			return fmt.Errorf("%w: failed to check non-working day: %v", ErrInternal, err)
		}

		// 4.3. Запись должна умещаться в рабочие часы
		if req.StartTime.Before(rule.OpeningTime(req.StartTime)) || req.EndTime.After(rule.ClosingTime(req.StartTime)) {
			uc.logger.Warn("CreateAdminAppointment: interval %s-%s outside working hours %02d:00-%02d:00",
				req.StartTime.Format("15:04"), req.EndTime.Format("15:04"), rule.StartHour, rule.EndHour)
			return ErrEndOfDayExceeded
		}

		status := domain.StatusScheduled
		if req.Status != nil {
			status = *req.Status
		}

		// 4.4. Вставка записи
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:  client.ID,
			ServiceID: service.ID,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    status,
			Note:      req.Note,
		})
		if err != nil {
			uc.logger.Error("CreateAdminAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAdminAppointment: created appointment id=%d", result.ID)

	return toResponse(result), nil
}

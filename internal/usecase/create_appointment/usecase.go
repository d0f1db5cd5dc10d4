package create_appointment

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

// UseCase use case создания записи с автоматическим размещением слота
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	txManager       TransactionManager
	bufferMinutes   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	bufferMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		txManager:       txManager,
		bufferMinutes:   bufferMinutes,
		logger:          logger,
	}
}

// Execute валидирует и создает запись.
// Чтение записей дня и вставка выполняются в сериализуемой транзакции
// с блокировкой FOR UPDATE: два конкурентных запроса на один день не могут
// получить один и тот же слот. Все проверки проходят до вставки - при любой
// ошибке хранилище не мутируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, service=%d, date=%s",
		req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем клиента: по первичному ID либо по telegram ID
	client, err := uc.clientRepo.GetByIDOrTelegram(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Разрешаем услугу
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	// 4. Вычисление слота и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Правило рабочего дня
		rule, err := uc.scheduleRepo.GetRuleByWeekday(txCtx, domain.WeekdayIndex(req.Date))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
				uc.logger.Warn("CreateAppointment: no working day rule for %s", req.Date.Format(domain.DateFormat))
				return ErrDayClosed
			}
			uc.logger.Error("CreateAppointment: failed to get working day rule: %v", err)
			return fmt.Errorf("%w: failed to get working day rule: %v", ErrInternal, err)
		}
		if !rule.IsWorking {
			uc.logger.Warn("CreateAppointment: day %s is marked non-working", req.Date.Format(domain.DateFormat))
			return ErrDayClosed
		}

		// 4.2. Разовый нерабочий день перекрывает недельный шаблон
		if _, err := uc.scheduleRepo.GetNonWorkingDayByDate(txCtx, req.Date); err == nil {
			uc.logger.Warn("CreateAppointment: %s is a non-working day", req.Date.Format(domain.DateFormat))
			return ErrNonWorkingDay
		} else if !errors.Is(err, scheduleRepo.ErrNonWorkingDayNotFound) {
			uc.logger.Error("CreateAppointment: failed to check non-working day: %v", err)
			return fmt.Errorf("%w: failed to check non-working day: %v", ErrInternal, err)
		}

		// 4.3. Неотменённые записи дня (FOR UPDATE внутри транзакции)
		appointments, err := uc.appointmentRepo.List(txCtx, sameDayFilter(req.Date))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		// 4.4. Кандидат: последовательное размещение после последней записи
		startTime := nextSlotStart(rule, appointments, req.Date, uc.bufferMinutes)
		endTime := startTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

		// 4.5. Запись должна закончиться не позже часа закрытия
		if endTime.After(rule.ClosingTime(req.Date)) {
			uc.logger.Warn("CreateAppointment: slot %s-%s exceeds end of day %02d:00",
				startTime.Format("15:04"), endTime.Format("15:04"), rule.EndHour)
			return ErrEndOfDayExceeded
		}

		// 4.6. Вставка записи
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:  client.ID,
			ServiceID: service.ID,
			StartTime: startTime,
			EndTime:   endTime,
			Status:    domain.StatusScheduled,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d at %s",
		result.ID, result.StartTime.Format(time.RFC3339))

	return toResponse(result), nil
}

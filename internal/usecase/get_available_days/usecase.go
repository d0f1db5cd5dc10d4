package get_available_days

import (
	"context"
	"errors"
	"fmt"

	"psyscheduler/internal/domain"
	catalogRepo "psyscheduler/internal/infra/storage/catalog"
	"psyscheduler/pkg/ptr"
)

// UseCase use case поиска дней с оставшейся ёмкостью для записи
//
// Ёмкость оценивается по самой короткой услуге каталога: день считается
// доступным, если после последней записи до закрытия помещается хотя бы
// минимально возможная запись.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// Execute возвращает дни периода [From, To], на которые можно записаться
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация периода - до любых запросов к хранилищу
	if req.From.IsZero() || req.To.IsZero() {
		uc.logger.Warn("GetAvailableDays: validation failed: both dates are required")
		return nil, fmt.Errorf("%w: both dates are required", ErrInvalidInput)
	}

	from := domain.StartOfDay(req.From)
	to := domain.StartOfDay(req.To)

	if from.After(to) {
		uc.logger.Warn("GetAvailableDays: invalid range: %s after %s",
			req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	// 2. Минимальная длительность записи: самая короткая услуга каталога.
	// Пустой каталог трактуется как длительность 0.
	shortestMinutes := 0
	shortest, err := uc.catalogRepo.GetShortest(ctx)
	if err != nil && !errors.Is(err, catalogRepo.ErrServiceNotFound) {
		uc.logger.Error("GetAvailableDays: failed to get shortest service: %v", err)
		return nil, fmt.Errorf("%w: failed to get shortest service: %v", ErrInternal, err)
	}
	if shortest != nil {
		shortestMinutes = shortest.DurationMinutes
	}

	// 3. Недельный шаблон рабочих часов
	rules, err := uc.scheduleRepo.ListRules(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to list working day rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list working day rules: %v", ErrInternal, err)
	}

	// 4. Неотменённые записи периода
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		StartFrom:        ptr.Ptr(from),
		StartTo:          ptr.Ptr(to.AddDate(0, 0, 1)),
		ExcludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 5. Нерабочие дни периода
	holidays, err := uc.scheduleRepo.ListNonWorkingDays(ctx, ptr.Ptr(from), ptr.Ptr(to))
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to list non-working days: %v", err)
		return nil, fmt.Errorf("%w: failed to list non-working days: %v", ErrInternal, err)
	}

	days := scanAvailableDays(from, to, rules, appointments, holidays, shortestMinutes)

	uc.logger.Info("GetAvailableDays: %d of %d days available in range",
		len(days), int(to.Sub(from).Hours()/24)+1)

	return &Response{Days: days}, nil
}

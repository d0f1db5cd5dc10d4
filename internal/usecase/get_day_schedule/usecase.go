package get_day_schedule

import (
	"context"
	"errors"
	"fmt"

	"psyscheduler/internal/domain"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
)

// UseCase use case вычисления следующего свободного слота на день
//
// Размещение последовательное: новая запись встает после самой поздней
// из существующих записей дня плюс буфер. Промежутки, освободившиеся после
// отмен, повторно не используются - это продуктовый инвариант, а не
// недоработка.
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	bufferMinutes   int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	bufferMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		bufferMinutes:   bufferMinutes,
		logger:          logger,
	}
}

// Execute вычисляет момент начала следующей записи на указанный день.
// Проверку того, что запись поместится до закрытия, usecase намеренно
// не выполняет - это ответственность вызывающего (admission),
// чтобы вычисление и валидация тестировались независимо.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: validation failed: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Ищем правило рабочего дня по дню недели (понедельник = 0)
	rule, err := uc.scheduleRepo.GetRuleByWeekday(ctx, domain.WeekdayIndex(req.Date))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			uc.logger.Info("GetDaySchedule: no working day rule for %s", req.Date.Format(domain.DateFormat))
			return nil, ErrDayClosed
		}
		uc.logger.Error("GetDaySchedule: failed to get working day rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get working day rule: %v", ErrInternal, err)
	}

	if !rule.IsWorking {
		uc.logger.Info("GetDaySchedule: day %s is marked non-working", req.Date.Format(domain.DateFormat))
		return nil, ErrDayClosed
	}

	// 2. Берем все неотменённые записи этого дня
	appointments, err := uc.appointmentRepo.List(ctx, sameDayFilter(req.Date))
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Следующий слот: открытие дня либо конец последней записи + буфер
	start := nextSlotStart(rule, appointments, req.Date, uc.bufferMinutes)

	uc.logger.Info("GetDaySchedule: next slot for %s starts at %s (%d appointments in day)",
		req.Date.Format(domain.DateFormat), start.Format("15:04"), len(appointments))

	return &Response{StartTime: start, Rule: rule}, nil
}

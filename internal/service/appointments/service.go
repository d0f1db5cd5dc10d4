package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"psyscheduler/internal/domain"
	appointmentRepo "psyscheduler/internal/infra/storage/appointment"
	clientRepo "psyscheduler/internal/infra/storage/client"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
	"psyscheduler/internal/service/appointments/models"
	"psyscheduler/pkg/ptr"
)

// Service сервис для работы с записями на консультации
type Service struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	clientRepo      ClientRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	clientRepo ClientRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает список записей с фильтрацией и пагинацией
// Фильтр по клиенту принимает как первичный ID, так и telegram ID
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, client=%v, service=%v", req.ClientID, req.ServiceID)

	filter, page, limit, err := s.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	total, err := s.appointmentRepo.Count(ctx, *filter)
	if err != nil {
		s.logger.Error("List: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	appointments, err := s.appointmentRepo.List(ctx, *filter)
	if err != nil {
		s.logger.Error("List: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d appointments", len(appointments), total)

	return &models.AppointmentListResponse{
		Appointments: models.FromDomainAppointmentList(appointments),
		Meta:         models.NewPaginationMeta(int(total), page, limit),
	}, nil
}

// Update частично обновляет запись.
// При изменении интервала новая дата проверяется против рабочего расписания,
// если не установлен флаг SkipScheduleValidation
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", id)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for appointment id=%d", id)
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	update := domain.AppointmentUpdate{
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      req.Note,
	}

	// Перенос записи на другого клиента: идентификатор принимается
	// как первичный либо telegram и разрешается в первичный
	if req.ClientID != nil {
		client, err := s.clientRepo.GetByIDOrTelegram(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				s.logger.Warn("Update: client id=%d not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			s.logger.Error("Update: failed to resolve client id=%d: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: Update - failed to resolve client: %v", ErrInternal, err)
		}
		update.ClientID = &client.ID
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !domain.ValidStatus(status) {
			s.logger.Warn("Update: invalid status=%s for appointment id=%d", *req.Status, id)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		update.Status = &status
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return nil, fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	if req.StartTime != nil || req.EndTime != nil {
		if err := s.validateReschedule(ctx, id, req); err != nil {
			return nil, err
		}
	}

	updated, err := s.appointmentRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated appointment id=%d", id)
	return models.FromDomainAppointment(updated), nil
}

// Delete удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// GetCalendar возвращает календарь за период: неотменённые записи,
// сгруппированные по календарным дням. Будние дни периода предзаполняются
// пустыми списками; записи на выходные (созданные администратором в обход
// расписания) добавляются под ключом своего дня по факту
func (s *Service) GetCalendar(ctx context.Context, from, to time.Time) (models.CalendarResponse, error) {
	s.logger.Info("GetCalendar: building calendar %s - %s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	fromDay := domain.StartOfDay(from)
	toDay := domain.StartOfDay(to)
	if toDay.Before(fromDay) {
		s.logger.Warn("GetCalendar: invalid range %s - %s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return nil, ErrInvalidRange
	}

	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		StartFrom:        ptr.Ptr(fromDay),
		StartTo:          ptr.Ptr(toDay.AddDate(0, 0, 1)),
		ExcludeCancelled: true,
		SortAsc:          true,
	})
	if err != nil {
		s.logger.Error("GetCalendar: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: GetCalendar - repository error: %v", ErrInternal, err)
	}

	calendar := models.CalendarResponse{}
	for day := fromDay; !day.After(toDay); day = day.AddDate(0, 0, 1) {
		// Предзаполняются только будние дни; выходные получают ключ
		// ниже, если на них есть записи
		if domain.WeekdayIndex(day) < 5 {
			calendar[day.Format(domain.DateFormat)] = []models.AppointmentResponse{}
		}
	}

	for _, appt := range appointments {
		key := domain.StartOfDay(appt.StartTime).Format(domain.DateFormat)
		calendar[key] = append(calendar[key], *models.FromDomainAppointment(appt))
	}

	s.logger.Info("GetCalendar: placed %d appointments", len(appointments))
	return calendar, nil
}

// Вспомогательные методы

// buildFilter конвертирует запрос списка в domain фильтр,
// разрешая идентификатор клиента
func (s *Service) buildFilter(ctx context.Context, req *models.ListAppointmentsRequest) (*domain.AppointmentsFilter, int, int, error) {
	filter := domain.AppointmentsFilter{
		ServiceID: req.ServiceID,
		StartFrom: req.StartFrom,
		StartTo:   req.StartTo,
	}

	if req.StartFrom != nil && req.StartTo != nil && req.StartTo.Before(*req.StartFrom) {
		s.logger.Warn("buildFilter: invalid range")
		return nil, 0, 0, ErrInvalidRange
	}

	// Порядок по startTime: по умолчанию DESC, свежие записи первыми
	if req.SortDirection != nil {
		switch *req.SortDirection {
		case "asc":
			filter.SortAsc = true
		case "desc":
		default:
			return nil, 0, 0, fmt.Errorf("%w: sortDirection must be asc or desc", ErrInvalidInput)
		}
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !domain.ValidStatus(status) {
			return nil, 0, 0, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req.ClientID != nil {
		client, err := s.clientRepo.GetByIDOrTelegram(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				s.logger.Warn("buildFilter: client id=%d not found", *req.ClientID)
				return nil, 0, 0, ErrClientNotFound
			}
			s.logger.Error("buildFilter: failed to resolve client id=%d: %v", *req.ClientID, err)
			return nil, 0, 0, fmt.Errorf("%w: failed to resolve client: %v", ErrInternal, err)
		}
		filter.ClientID = &client.ID
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = domain.DefaultPageLimit
	}

	return &filter, page, limit, nil
}

// validateReschedule проверяет новый интервал записи против рабочего расписания
func (s *Service) validateReschedule(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) error {
	existing, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("validateReschedule: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: validateReschedule - repository error: %v", ErrInternal, err)
	}

	start := existing.StartTime
	end := existing.EndTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		end = *req.EndTime
	}

	if !end.After(start) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	if !domain.StartOfDay(start).Equal(domain.StartOfDay(end)) {
		return fmt.Errorf("%w: appointment must start and end on the same day", ErrInvalidInput)
	}

	if req.SkipScheduleValidation {
		s.logger.Info("validateReschedule: schedule validation skipped for appointment id=%d", id)
		return nil
	}

	rule, err := s.scheduleRepo.GetRuleByWeekday(ctx, domain.WeekdayIndex(start))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("validateReschedule: no working day rule for %s", start.Format(domain.DateFormat))
			return ErrDayClosed
		}
		s.logger.Error("validateReschedule: failed to get working day rule: %v", err)
		return fmt.Errorf("%w: validateReschedule - repository error: %v", ErrInternal, err)
	}
	if !rule.IsWorking {
		return ErrDayClosed
	}

	if _, err := s.scheduleRepo.GetNonWorkingDayByDate(ctx, start); err == nil {
		s.logger.Warn("validateReschedule: %s is a non-working day", start.Format(domain.DateFormat))
		return ErrNonWorkingDay
	} else if !errors.Is(err, scheduleRepo.ErrNonWorkingDayNotFound) {
		s.logger.Error("validateReschedule: failed to check non-working day: %v", err)
		return fmt.Errorf("%w: validateReschedule - repository error: %v", ErrInternal, err)
	}

	if start.Before(rule.OpeningTime(start)) || end.After(rule.ClosingTime(start)) {
		s.logger.Warn("validateReschedule: interval %s-%s outside working hours %02d:00-%02d:00",
			start.Format("15:04"), end.Format("15:04"), rule.StartHour, rule.EndHour)
		return ErrOutsideWorkingHours
	}

	return nil
}

package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psyscheduler/internal/domain"
	appointmentRepo "psyscheduler/internal/infra/storage/appointment"
	clientRepo "psyscheduler/internal/infra/storage/client"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
	"psyscheduler/internal/service/appointments/models"
	"psyscheduler/pkg/ptr"
)

type fakeAppointmentRepo struct {
	byID      map[int64]*domain.Appointment
	list      []*domain.Appointment
	total     int64
	gotFilter domain.AppointmentsFilter
	updated   *domain.AppointmentUpdate
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	return f.list, nil
}

func (f *fakeAppointmentRepo) Count(_ context.Context, _ domain.AppointmentsFilter) (int64, error) {
	return f.total, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, id int64, update domain.AppointmentUpdate) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	f.updated = &update
	result := *appt
	if update.StartTime != nil {
		result.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		result.EndTime = *update.EndTime
	}
	if update.Status != nil {
		result.Status = *update.Status
	}
	return &result, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeScheduleRepo struct {
	rules    map[int]*domain.WorkingDayRule
	holidays map[time.Time]*domain.NonWorkingDay
}

func (f *fakeScheduleRepo) GetRuleByWeekday(_ context.Context, dayOfWeek int) (*domain.WorkingDayRule, error) {
	rule, ok := f.rules[dayOfWeek]
	if !ok {
		return nil, scheduleRepo.ErrRuleNotFound
	}
	return rule, nil
}

func (f *fakeScheduleRepo) GetNonWorkingDayByDate(_ context.Context, date time.Time) (*domain.NonWorkingDay, error) {
	holiday, ok := f.holidays[domain.StartOfDay(date)]
	if !ok {
		return nil, scheduleRepo.ErrNonWorkingDayNotFound
	}
	return holiday, nil
}

type fakeClientRepo struct {
	clients map[int64]*domain.Client
}

func (f *fakeClientRepo) GetByIDOrTelegram(_ context.Context, id int64) (*domain.Client, error) {
	client, ok := f.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return client, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник 2026-03-02
var testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func appt(id int64, start, end time.Time) *domain.Appointment {
	return &domain.Appointment{
		ID: id, ClientID: 1, ServiceID: 10,
		StartTime: start, EndTime: end,
		Status: domain.StatusScheduled,
	}
}

type fixture struct {
	appointments *fakeAppointmentRepo
	schedule     *fakeScheduleRepo
	clients      *fakeClientRepo
	svc          *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		appointments: &fakeAppointmentRepo{byID: map[int64]*domain.Appointment{}},
		schedule: &fakeScheduleRepo{
			rules: map[int]*domain.WorkingDayRule{
				0: {DayOfWeek: 0, StartHour: 9, EndHour: 18, IsWorking: true},
			},
			holidays: map[time.Time]*domain.NonWorkingDay{},
		},
		clients: &fakeClientRepo{clients: map[int64]*domain.Client{
			1: {ID: 1, Name: "Анна"},
		}},
	}
	f.svc = NewService(f.appointments, f.schedule, f.clients, nopLogger{})
	return f
}

func TestGetByID_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_ResolvesClientAndPaginates(t *testing.T) {
	f := newFixture(t)
	f.appointments.list = []*domain.Appointment{
		appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour)),
	}
	f.appointments.total = 25

	resp, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		ClientID: ptr.Ptr(int64(1)),
		Page:     2,
		Limit:    10,
	})

	require.NoError(t, err)
	assert.Equal(t, 25, resp.Meta.TotalItems)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Equal(t, 2, resp.Meta.CurrentPage)
	require.NotNil(t, resp.Meta.NextPage)
	assert.Equal(t, 3, *resp.Meta.NextPage)
	require.NotNil(t, resp.Meta.PrevPage)
	assert.Equal(t, 1, *resp.Meta.PrevPage)

	assert.Equal(t, 10, f.appointments.gotFilter.Limit)
	assert.Equal(t, 10, f.appointments.gotFilter.Offset)
	require.NotNil(t, f.appointments.gotFilter.ClientID)
	assert.Equal(t, int64(1), *f.appointments.gotFilter.ClientID)
}

func TestList_DefaultsPageAndLimit(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPageLimit, f.appointments.gotFilter.Limit)
	assert.Equal(t, 0, f.appointments.gotFilter.Offset)
	// По умолчанию свежие записи первыми
	assert.False(t, f.appointments.gotFilter.SortAsc)
}

func TestList_SortDirection(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		SortDirection: ptr.Ptr("asc"),
	})
	require.NoError(t, err)
	assert.True(t, f.appointments.gotFilter.SortAsc)

	_, err = f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		SortDirection: ptr.Ptr("desc"),
	})
	require.NoError(t, err)
	assert.False(t, f.appointments.gotFilter.SortAsc)

	_, err = f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		SortDirection: ptr.Ptr("upward"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_UnknownClient(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		ClientID: ptr.Ptr(int64(999)),
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestList_InvalidStatus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("UNKNOWN"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_InvalidRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		StartFrom: ptr.Ptr(testMonday.AddDate(0, 0, 7)),
		StartTo:   ptr.Ptr(testMonday),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestUpdate_EmptyRequest(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_StatusOnly(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[1] = appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour))

	resp, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		Status: ptr.Ptr("CANCELLED"),
	})

	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestUpdate_ClientResolvedByTelegramID(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[1] = appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour))
	// Клиент с первичным ID 2 доступен по telegram ID 500
	f.clients.clients[500] = &domain.Client{ID: 2, Name: "Пётр"}

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		ClientID: ptr.Ptr(int64(500)),
	})

	require.NoError(t, err)
	require.NotNil(t, f.appointments.updated.ClientID)
	assert.Equal(t, int64(2), *f.appointments.updated.ClientID)
}

func TestUpdate_UnknownClient(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[1] = appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour))

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		ClientID: ptr.Ptr(int64(999)),
	})

	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Nil(t, f.appointments.updated)
}

func TestUpdate_RescheduleOutsideHours(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[1] = appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour))

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		StartTime: ptr.Ptr(testMonday.Add(19 * time.Hour)),
		EndTime:   ptr.Ptr(testMonday.Add(20 * time.Hour)),
	})

	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestUpdate_SkipScheduleValidation(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[1] = appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour))

	// Тот же интервал вне рабочих часов, но с обходом проверки расписания
	resp, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		StartTime:              ptr.Ptr(testMonday.Add(19 * time.Hour)),
		EndTime:                ptr.Ptr(testMonday.Add(20 * time.Hour)),
		SkipScheduleValidation: true,
	})

	require.NoError(t, err)
	assert.Equal(t, testMonday.Add(19*time.Hour), resp.StartTime)
}

func TestUpdate_RescheduleToHoliday(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[1] = appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour))
	f.schedule.holidays[testMonday] = &domain.NonWorkingDay{Date: testMonday, Reason: "отпуск"}

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		StartTime: ptr.Ptr(testMonday.Add(11 * time.Hour)),
		EndTime:   ptr.Ptr(testMonday.Add(12 * time.Hour)),
	})

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestUpdate_RescheduleAcrossMidnight(t *testing.T) {
	f := newFixture(t)
	f.appointments.byID[1] = appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour))

	_, err := f.svc.Update(context.Background(), 1, &models.UpdateAppointmentRequest{
		StartTime: ptr.Ptr(testMonday.Add(23 * time.Hour)),
		EndTime:   ptr.Ptr(testMonday.Add(25 * time.Hour)),
		// Проверка суточных границ не отключается флагом
		SkipScheduleValidation: true,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetCalendar_GroupsByCalendarDay(t *testing.T) {
	f := newFixture(t)
	nextMonday := testMonday.AddDate(0, 0, 7)
	saturday := testMonday.AddDate(0, 0, 5)
	f.appointments.list = []*domain.Appointment{
		appt(1, testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour)),
		// Понедельник следующей недели: отдельный календарный день
		appt(2, nextMonday.Add(9*time.Hour), nextMonday.Add(10*time.Hour)),
		// Субботняя запись, созданная администратором в обход расписания
		appt(3, saturday.Add(10*time.Hour), saturday.Add(11*time.Hour)),
	}

	calendar, err := f.svc.GetCalendar(context.Background(), testMonday, nextMonday)

	require.NoError(t, err)

	require.Len(t, calendar["2026-03-02"], 1)
	assert.Equal(t, int64(1), calendar["2026-03-02"][0].ID)
	require.Len(t, calendar["2026-03-09"], 1)
	assert.Equal(t, int64(2), calendar["2026-03-09"][0].ID)

	// Выходная запись не теряется: ключ появляется по факту
	require.Len(t, calendar["2026-03-07"], 1)
	assert.Equal(t, int64(3), calendar["2026-03-07"][0].ID)

	// Будние дни без записей предзаполнены пустыми списками
	wednesday, ok := calendar["2026-03-04"]
	require.True(t, ok)
	assert.Empty(t, wednesday)

	// Воскресенье без записей ключа не получает
	_, ok = calendar["2026-03-08"]
	assert.False(t, ok)

	// 6 будних дней периода + суббота с записью
	assert.Len(t, calendar, 7)

	assert.True(t, f.appointments.gotFilter.ExcludeCancelled)
	assert.True(t, f.appointments.gotFilter.SortAsc)
}

func TestGetCalendar_InvalidRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetCalendar(context.Background(), testMonday.AddDate(0, 0, 7), testMonday)

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewPaginationMeta_Boundaries(t *testing.T) {
	first := models.NewPaginationMeta(25, 1, 10)
	assert.Nil(t, first.PrevPage)
	require.NotNil(t, first.NextPage)
	assert.Equal(t, 2, *first.NextPage)

	last := models.NewPaginationMeta(25, 3, 10)
	assert.Nil(t, last.NextPage)
	require.NotNil(t, last.PrevPage)
	assert.Equal(t, 2, *last.PrevPage)

	empty := models.NewPaginationMeta(0, 1, 10)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Nil(t, empty.NextPage)
	assert.Nil(t, empty.PrevPage)
}

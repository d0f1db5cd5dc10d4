package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psyscheduler/internal/domain"
	catalogRepo "psyscheduler/internal/infra/storage/catalog"
	clientRepo "psyscheduler/internal/infra/storage/client"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
	"psyscheduler/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	created      *domain.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
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

type fakeCatalogRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return service, nil
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

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник 2026-03-02, рабочий день 9-18
var testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fixture struct {
	appointments *fakeAppointmentRepo
	schedule     *fakeScheduleRepo
	catalog      *fakeCatalogRepo
	clients      *fakeClientRepo
	tx           *fakeTxManager
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		schedule: &fakeScheduleRepo{
			rules: map[int]*domain.WorkingDayRule{
				0: {ID: 1, DayOfWeek: 0, StartHour: 9, EndHour: 18, IsWorking: true},
				6: {ID: 7, DayOfWeek: 6, StartHour: 9, EndHour: 14, IsWorking: false},
			},
			holidays: map[time.Time]*domain.NonWorkingDay{},
		},
		catalog: &fakeCatalogRepo{services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Консультация", DurationMinutes: 60},
			11: {ID: 11, Name: "Первичная встреча", DurationMinutes: 45},
		}},
		clients: &fakeClientRepo{clients: map[int64]*domain.Client{
			1: {ID: 1, Name: "Анна"},
		}},
		tx: &fakeTxManager{},
	}
	f.uc = NewUseCase(f.appointments, f.schedule, f.catalog, f.clients, f.tx, 10, nopLogger{})
	return f
}

func TestExecute_FirstAppointmentAtOpening(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 10, Date: testMonday})

	require.NoError(t, err)
	assert.Equal(t, testMonday.Add(9*time.Hour), resp.StartTime)
	assert.Equal(t, testMonday.Add(10*time.Hour), resp.EndTime)
	assert.Equal(t, domain.StatusScheduled, resp.Status)
	assert.Equal(t, 1, f.tx.calls)
}

func TestExecute_SequentialPlacementAfterLatest(t *testing.T) {
	f := newFixture(t)
	f.appointments.appointments = []*domain.Appointment{
		{StartTime: testMonday.Add(9 * time.Hour), EndTime: testMonday.Add(10 * time.Hour), Status: domain.StatusScheduled},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 10, Date: testMonday})

	require.NoError(t, err)
	assert.Equal(t, testMonday.Add(10*time.Hour+10*time.Minute), resp.StartTime)
	assert.Equal(t, testMonday.Add(11*time.Hour+10*time.Minute), resp.EndTime)
}

func TestExecute_EndOfDayExceeded(t *testing.T) {
	f := newFixture(t)
	// Последняя запись кончается в 17:30: 17:40 + 60 минут > 18:00
	f.appointments.appointments = []*domain.Appointment{
		{StartTime: testMonday.Add(16*time.Hour + 30*time.Minute), EndTime: testMonday.Add(17*time.Hour + 30*time.Minute), Status: domain.StatusScheduled},
	}

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 10, Date: testMonday})

	assert.ErrorIs(t, err, ErrEndOfDayExceeded)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_SlotEndingExactlyAtClosingFits(t *testing.T) {
	f := newFixture(t)
	// 16:50 + 10 минут буфера = 17:00, плюс 60 минут ровно до закрытия
	f.appointments.appointments = []*domain.Appointment{
		{StartTime: testMonday.Add(16 * time.Hour), EndTime: testMonday.Add(16*time.Hour + 50*time.Minute), Status: domain.StatusScheduled},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 10, Date: testMonday})

	require.NoError(t, err)
	assert.Equal(t, testMonday.Add(18*time.Hour), resp.EndTime)
}

func TestExecute_DayClosedNoRule(t *testing.T) {
	f := newFixture(t)
	tuesday := testMonday.AddDate(0, 0, 1)

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 10, Date: tuesday})

	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_DayClosedNonWorkingRule(t *testing.T) {
	f := newFixture(t)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 10, Date: sunday})

	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_NonWorkingDayOverridesTemplate(t *testing.T) {
	f := newFixture(t)
	f.schedule.holidays[testMonday] = &domain.NonWorkingDay{ID: 1, Date: testMonday, Reason: "отпуск"}

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 10, Date: testMonday})

	assert.ErrorIs(t, err, ErrNonWorkingDay)
	assert.Nil(t, f.appointments.created)
}

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 999, ServiceID: 10, Date: testMonday})

	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Equal(t, 0, f.tx.calls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{ClientID: 1, ServiceID: 999, Date: testMonday})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Equal(t, 0, f.tx.calls)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой clientID", &Request{ClientID: 0, ServiceID: 10, Date: testMonday}},
		{"отрицательный serviceID", &Request{ClientID: 1, ServiceID: -1, Date: testMonday}},
		{"нулевая дата", &Request{ClientID: 1, ServiceID: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSameDayFilter(t *testing.T) {
	filter := sameDayFilter(testMonday.Add(15 * time.Hour))

	assert.Equal(t, ptr.Ptr(testMonday), filter.StartFrom)
	assert.Equal(t, ptr.Ptr(testMonday.AddDate(0, 0, 1)), filter.StartTo)
	assert.True(t, filter.ExcludeCancelled)
}

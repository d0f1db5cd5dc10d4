package create_admin_appointment

import (
	"context"
	"strings"
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
	created *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	created.ID = 1
	f.created = &created
	return &created, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
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
	uc           *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		appointments: &fakeAppointmentRepo{},
		schedule: &fakeScheduleRepo{
			rules: map[int]*domain.WorkingDayRule{
				0: {ID: 1, DayOfWeek: 0, StartHour: 9, EndHour: 18, IsWorking: true},
			},
			holidays: map[time.Time]*domain.NonWorkingDay{},
		},
	}
	catalog := &fakeCatalogRepo{services: map[int64]*domain.Service{
		10: {ID: 10, Name: "Консультация", DurationMinutes: 60},
	}}
	clients := &fakeClientRepo{clients: map[int64]*domain.Client{
		1: {ID: 1, Name: "Анна"},
	}}
	f.uc = NewUseCase(f.appointments, f.schedule, catalog, clients, fakeTxManager{}, nopLogger{})
	return f
}

func TestExecute_ExplicitIntervalWithinHours(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  1,
		ServiceID: 10,
		StartTime: testMonday.Add(11 * time.Hour),
		EndTime:   testMonday.Add(12 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, testMonday.Add(11*time.Hour), resp.StartTime)
	assert.Equal(t, domain.StatusScheduled, resp.Status)
}

func TestExecute_ExplicitStatusAndNote(t *testing.T) {
	f := newFixture(t)
	note := "перенесена с прошлой недели"

	resp, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  1,
		ServiceID: 10,
		StartTime: testMonday.Add(11 * time.Hour),
		EndTime:   testMonday.Add(12 * time.Hour),
		Status:    ptr.Ptr(domain.StatusCompleted),
		Note:      &note,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, resp.Status)
	require.NotNil(t, resp.Note)
	assert.Equal(t, note, *resp.Note)
}

func TestExecute_IntervalOutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"до открытия", testMonday.Add(8 * time.Hour), testMonday.Add(9 * time.Hour)},
		{"после закрытия", testMonday.Add(17*time.Hour + 30*time.Minute), testMonday.Add(18*time.Hour + 30*time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), &Request{
				ClientID: 1, ServiceID: 10, StartTime: tt.start, EndTime: tt.end,
			})
			assert.ErrorIs(t, err, ErrEndOfDayExceeded)
		})
	}
	assert.Nil(t, f.appointments.created)
}

func TestExecute_IntervalEndingAtClosingFits(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  1,
		ServiceID: 10,
		StartTime: testMonday.Add(17 * time.Hour),
		EndTime:   testMonday.Add(18 * time.Hour),
	})

	assert.NoError(t, err)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	f := newFixture(t)
	f.schedule.holidays[testMonday] = &domain.NonWorkingDay{Date: testMonday, Reason: "отпуск"}

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  1,
		ServiceID: 10,
		StartTime: testMonday.Add(11 * time.Hour),
		EndTime:   testMonday.Add(12 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_DayWithoutRule(t *testing.T) {
	f := newFixture(t)
	tuesday := testMonday.AddDate(0, 0, 1)

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  1,
		ServiceID: 10,
		StartTime: tuesday.Add(11 * time.Hour),
		EndTime:   tuesday.Add(12 * time.Hour),
	})

	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)
	badStatus := domain.AppointmentStatus("UNKNOWN")
	longNote := strings.Repeat("а", domain.MaxNoteLength+1)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			"конец раньше начала",
			&Request{ClientID: 1, ServiceID: 10, StartTime: testMonday.Add(12 * time.Hour), EndTime: testMonday.Add(11 * time.Hour)},
		},
		{
			"интервал через полночь",
			&Request{ClientID: 1, ServiceID: 10, StartTime: testMonday.Add(17 * time.Hour), EndTime: testMonday.Add(25 * time.Hour)},
		},
		{
			"неизвестный статус",
			&Request{ClientID: 1, ServiceID: 10, StartTime: testMonday.Add(11 * time.Hour), EndTime: testMonday.Add(12 * time.Hour), Status: &badStatus},
		},
		{
			"слишком длинная заметка",
			&Request{ClientID: 1, ServiceID: 10, StartTime: testMonday.Add(11 * time.Hour), EndTime: testMonday.Add(12 * time.Hour), Note: &longNote},
		},
		{
			"нулевое время",
			&Request{ClientID: 1, ServiceID: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

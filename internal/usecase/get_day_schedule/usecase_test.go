package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psyscheduler/internal/domain"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.AppointmentsFilter
}

func (f *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	rules map[int]*domain.WorkingDayRule
}

func (f *fakeScheduleRepo) GetRuleByWeekday(_ context.Context, dayOfWeek int) (*domain.WorkingDayRule, error) {
	rule, ok := f.rules[dayOfWeek]
	if !ok {
		return nil, scheduleRepo.ErrRuleNotFound
	}
	return rule, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник 2026-03-02, рабочий день 9-18
var (
	testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mondayRule = &domain.WorkingDayRule{ID: 1, DayOfWeek: 0, StartHour: 9, EndHour: 18, IsWorking: true}
)

func appt(start, end time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{StartTime: start, EndTime: end, Status: status}
}

func TestExecute_EmptyDayStartsAtOpening(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{rules: map[int]*domain.WorkingDayRule{0: mondayRule}},
		domain.DefaultBufferMinutes,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday})

	require.NoError(t, err)
	assert.Equal(t, testMonday.Add(9*time.Hour), resp.StartTime)
	assert.Equal(t, mondayRule, resp.Rule)
}

func TestExecute_NextSlotAfterLatestEndPlusBuffer(t *testing.T) {
	appointments := []*domain.Appointment{
		appt(testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour), domain.StatusScheduled),
		appt(testMonday.Add(12*time.Hour), testMonday.Add(13*time.Hour+30*time.Minute), domain.StatusScheduled),
	}

	uc := NewUseCase(
		&fakeAppointmentRepo{appointments: appointments},
		&fakeScheduleRepo{rules: map[int]*domain.WorkingDayRule{0: mondayRule}},
		10,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: testMonday})

	require.NoError(t, err)
	// 13:30 + 10 минут буфера, утренний промежуток не используется
	assert.Equal(t, testMonday.Add(13*time.Hour+40*time.Minute), resp.StartTime)
}

func TestExecute_CancelledAppointmentsExcludedFromQuery(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := NewUseCase(
		repo,
		&fakeScheduleRepo{rules: map[int]*domain.WorkingDayRule{0: mondayRule}},
		10,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testMonday})

	require.NoError(t, err)
	assert.True(t, repo.gotFilter.ExcludeCancelled)
	require.NotNil(t, repo.gotFilter.StartFrom)
	require.NotNil(t, repo.gotFilter.StartTo)
	assert.Equal(t, testMonday, *repo.gotFilter.StartFrom)
	assert.Equal(t, testMonday.AddDate(0, 0, 1), *repo.gotFilter.StartTo)
}

func TestExecute_NoRuleForWeekday(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{rules: map[int]*domain.WorkingDayRule{}},
		10,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: testMonday})

	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_NonWorkingRule(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	closedRule := &domain.WorkingDayRule{DayOfWeek: 6, StartHour: 9, EndHour: 14, IsWorking: false}

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{rules: map[int]*domain.WorkingDayRule{6: closedRule}},
		10,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{Date: sunday})

	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, 10, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNextSlotStart_UsesLatestEndNotLastElement(t *testing.T) {
	// Записи приходят не обязательно в хронологическом порядке
	appointments := []*domain.Appointment{
		appt(testMonday.Add(14*time.Hour), testMonday.Add(15*time.Hour), domain.StatusScheduled),
		appt(testMonday.Add(9*time.Hour), testMonday.Add(10*time.Hour), domain.StatusScheduled),
	}

	got := nextSlotStart(mondayRule, appointments, testMonday, 10)

	assert.Equal(t, testMonday.Add(15*time.Hour+10*time.Minute), got)
}

package get_available_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psyscheduler/internal/domain"
	catalogRepo "psyscheduler/internal/infra/storage/catalog"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeScheduleRepo struct {
	rules    []*domain.WorkingDayRule
	holidays []*domain.NonWorkingDay
}

func (f *fakeScheduleRepo) ListRules(_ context.Context) ([]*domain.WorkingDayRule, error) {
	return f.rules, nil
}

func (f *fakeScheduleRepo) ListNonWorkingDays(_ context.Context, _, _ *time.Time) ([]*domain.NonWorkingDay, error) {
	return f.holidays, nil
}

type fakeCatalogRepo struct {
	shortest *domain.Service
}

func (f *fakeCatalogRepo) GetShortest(_ context.Context) (*domain.Service, error) {
	if f.shortest == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.shortest, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Неделя с понедельника 2026-03-02; рабочие дни Пн-Пт 9-18
var (
	testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	testFriday = testMonday.AddDate(0, 0, 4)
	testSunday = testMonday.AddDate(0, 0, 6)
)

func weekdayRules() []*domain.WorkingDayRule {
	rules := make([]*domain.WorkingDayRule, 0, 7)
	for day := 0; day < 5; day++ {
		rules = append(rules, &domain.WorkingDayRule{DayOfWeek: day, StartHour: 9, EndHour: 18, IsWorking: true})
	}
	rules = append(rules,
		&domain.WorkingDayRule{DayOfWeek: 5, StartHour: 9, EndHour: 16, IsWorking: false},
		&domain.WorkingDayRule{DayOfWeek: 6, StartHour: 9, EndHour: 14, IsWorking: false},
	)
	return rules
}

func newUseCase(appts *fakeAppointmentRepo, sched *fakeScheduleRepo, cat *fakeCatalogRepo) *UseCase {
	return NewUseCase(appts, sched, cat, nopLogger{})
}

func TestExecute_WorkingWeekAllAvailable(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{rules: weekdayRules()},
		&fakeCatalogRepo{shortest: &domain.Service{DurationMinutes: 45}},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: testMonday, To: testSunday})

	require.NoError(t, err)
	// Пн-Пт доступны, выходные отмечены нерабочими в шаблоне
	require.Len(t, resp.Days, 5)
	assert.Equal(t, testMonday, resp.Days[0])
	assert.Equal(t, testFriday, resp.Days[4])
}

func TestExecute_HolidayExcluded(t *testing.T) {
	wednesday := testMonday.AddDate(0, 0, 2)
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{
			rules:    weekdayRules(),
			holidays: []*domain.NonWorkingDay{{Date: wednesday, Reason: "конференция"}},
		},
		&fakeCatalogRepo{shortest: &domain.Service{DurationMinutes: 45}},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: testMonday, To: testFriday})

	require.NoError(t, err)
	assert.Len(t, resp.Days, 4)
	assert.NotContains(t, resp.Days, wednesday)
}

func TestExecute_FullDayExcluded(t *testing.T) {
	// Понедельник занят до 17:30: 45 минут до 18:00 уже не помещаются
	uc := newUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{
				StartTime: testMonday.Add(16*time.Hour + 30*time.Minute),
				EndTime:   testMonday.Add(17*time.Hour + 30*time.Minute),
				Status:    domain.StatusScheduled,
			},
		}},
		&fakeScheduleRepo{rules: weekdayRules()},
		&fakeCatalogRepo{shortest: &domain.Service{DurationMinutes: 45}},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: testMonday, To: testFriday})

	require.NoError(t, err)
	assert.Len(t, resp.Days, 4)
	assert.NotContains(t, resp.Days, testMonday)
}

func TestExecute_PartiallyBookedDayStillAvailable(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{
				StartTime: testMonday.Add(9 * time.Hour),
				EndTime:   testMonday.Add(10 * time.Hour),
				Status:    domain.StatusScheduled,
			},
		}},
		&fakeScheduleRepo{rules: weekdayRules()},
		&fakeCatalogRepo{shortest: &domain.Service{DurationMinutes: 45}},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: testMonday, To: testMonday})

	require.NoError(t, err)
	assert.Contains(t, resp.Days, testMonday)
}

func TestExecute_EmptyCatalogTreatedAsZeroDuration(t *testing.T) {
	// Каталог пуст: ёмкость не проверяется, занятый день остается доступным
	uc := newUseCase(
		&fakeAppointmentRepo{appointments: []*domain.Appointment{
			{
				StartTime: testMonday.Add(16*time.Hour + 30*time.Minute),
				EndTime:   testMonday.Add(17*time.Hour + 30*time.Minute),
				Status:    domain.StatusScheduled,
			},
		}},
		&fakeScheduleRepo{rules: weekdayRules()},
		&fakeCatalogRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: testMonday, To: testMonday})

	require.NoError(t, err)
	assert.Contains(t, resp.Days, testMonday)
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{rules: weekdayRules()}, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), &Request{From: testFriday, To: testMonday})

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_ZeroDates(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), &Request{From: testMonday})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SameDayRange(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{rules: weekdayRules()},
		&fakeCatalogRepo{shortest: &domain.Service{DurationMinutes: 45}},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: testMonday, To: testMonday})

	require.NoError(t, err)
	assert.Equal(t, []time.Time{testMonday}, resp.Days)
}

package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psyscheduler/internal/domain"
	scheduleRepo "psyscheduler/internal/infra/storage/schedule"
	"psyscheduler/internal/service/schedule/models"
)

type fakeScheduleRepo struct {
	rules   []*domain.WorkingDayRule
	days    map[time.Time]*domain.NonWorkingDay
	nextID  int64
	updated *domain.WorkingDayRule
}

func (f *fakeScheduleRepo) ListRules(_ context.Context) ([]*domain.WorkingDayRule, error) {
	return f.rules, nil
}

func (f *fakeScheduleRepo) UpdateRule(_ context.Context, id int64, rule *domain.WorkingDayRule) (*domain.WorkingDayRule, error) {
	for _, existing := range f.rules {
		if existing.ID == id {
			updated := *rule
			updated.ID = id
			f.updated = &updated
			return &updated, nil
		}
	}
	return nil, scheduleRepo.ErrRuleNotFound
}

func (f *fakeScheduleRepo) CreateNonWorkingDay(_ context.Context, day *domain.NonWorkingDay) (*domain.NonWorkingDay, error) {
	if _, ok := f.days[day.Date]; ok {
		return nil, scheduleRepo.ErrNonWorkingDayExists
	}
	f.nextID++
	created := *day
	created.ID = f.nextID
	f.days[day.Date] = &created
	return &created, nil
}

func (f *fakeScheduleRepo) ListNonWorkingDays(_ context.Context, _, _ *time.Time) ([]*domain.NonWorkingDay, error) {
	result := make([]*domain.NonWorkingDay, 0, len(f.days))
	for _, day := range f.days {
		result = append(result, day)
	}
	return result, nil
}

func (f *fakeScheduleRepo) DeleteNonWorkingDay(_ context.Context, id int64) error {
	for date, day := range f.days {
		if day.ID == id {
			delete(f.days, date)
			return nil
		}
	}
	return scheduleRepo.ErrNonWorkingDayNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T) (*fakeScheduleRepo, *Service) {
	t.Helper()

	repo := &fakeScheduleRepo{
		rules: []*domain.WorkingDayRule{
			{ID: 1, DayOfWeek: 0, StartHour: 9, EndHour: 18, IsWorking: true},
			{ID: 7, DayOfWeek: 6, StartHour: 9, EndHour: 14, IsWorking: false},
		},
		days: map[time.Time]*domain.NonWorkingDay{},
	}
	return repo, NewService(repo, nopLogger{})
}

func TestUpdateRule_PreservesDayOfWeek(t *testing.T) {
	repo, svc := newFixture(t)

	resp, err := svc.UpdateRule(context.Background(), 1, &models.UpdateRuleRequest{
		StartHour: 10,
		EndHour:   17,
		IsWorking: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.DayOfWeek)
	assert.Equal(t, 10, resp.StartHour)
	assert.Equal(t, 17, resp.EndHour)
	assert.Equal(t, 0, repo.updated.DayOfWeek)
}

func TestUpdateRule_NotFound(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.UpdateRule(context.Background(), 99, &models.UpdateRuleRequest{
		StartHour: 9, EndHour: 18, IsWorking: true,
	})

	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestUpdateRule_Validation(t *testing.T) {
	_, svc := newFixture(t)

	tests := []struct {
		name string
		req  *models.UpdateRuleRequest
	}{
		{"час больше 23", &models.UpdateRuleRequest{StartHour: 9, EndHour: 24, IsWorking: true}},
		{"отрицательный час", &models.UpdateRuleRequest{StartHour: -1, EndHour: 18, IsWorking: true}},
		{"начало не раньше конца", &models.UpdateRuleRequest{StartHour: 18, EndHour: 9, IsWorking: true}},
		{"равные часы в рабочий день", &models.UpdateRuleRequest{StartHour: 9, EndHour: 9, IsWorking: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UpdateRule(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateRule_EqualHoursAllowedOnNonWorkingDay(t *testing.T) {
	_, svc := newFixture(t)

	// Для нерабочего дня часы не проверяются на порядок
	_, err := svc.UpdateRule(context.Background(), 7, &models.UpdateRuleRequest{
		StartHour: 0, EndHour: 0, IsWorking: false,
	})

	assert.NoError(t, err)
}

func TestCreateNonWorkingDay_NormalizesToStartOfDay(t *testing.T) {
	repo, svc := newFixture(t)
	reason := "отпуск"

	resp, err := svc.CreateNonWorkingDay(context.Background(), &models.CreateNonWorkingDayRequest{
		Date:   time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC),
		Reason: &reason,
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", resp.Date)
	assert.Equal(t, "отпуск", resp.Reason)

	_, stored := repo.days[time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)]
	assert.True(t, stored)
}

func TestCreateNonWorkingDay_Duplicate(t *testing.T) {
	_, svc := newFixture(t)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateNonWorkingDay(context.Background(), &models.CreateNonWorkingDayRequest{Date: date})
	require.NoError(t, err)

	_, err = svc.CreateNonWorkingDay(context.Background(), &models.CreateNonWorkingDayRequest{Date: date})
	assert.ErrorIs(t, err, ErrNonWorkingDayExists)
}

func TestListNonWorkingDays_InvalidRange(t *testing.T) {
	_, svc := newFixture(t)
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := svc.ListNonWorkingDays(context.Background(), &from, &to)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteNonWorkingDay_NotFound(t *testing.T) {
	_, svc := newFixture(t)

	err := svc.DeleteNonWorkingDay(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNonWorkingDayNotFound)
}

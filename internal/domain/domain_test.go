package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"понедельник", time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), 0},
		{"вторник", time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), 1},
		{"пятница", time.Date(2026, 3, 6, 23, 59, 0, 0, time.UTC), 4},
		{"суббота", time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC), 5},
		{"воскресенье", time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekdayIndex(tt.date))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	assert.NoError(t, err)

	ts := time.Date(2026, 3, 2, 17, 45, 30, 123, loc)
	got := StartOfDay(ts)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestWorkingDayRule_OpeningClosingTime(t *testing.T) {
	rule := &WorkingDayRule{DayOfWeek: 0, StartHour: 9, EndHour: 18, IsWorking: true}
	day := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), rule.OpeningTime(day))
	assert.Equal(t, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC), rule.ClosingTime(day))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.False(t, ValidStatus("PENDING"))
	assert.False(t, ValidStatus(""))
}

func TestValidSupportStatus(t *testing.T) {
	assert.True(t, ValidSupportStatus(SupportPending))
	assert.True(t, ValidSupportStatus(SupportInProgress))
	assert.True(t, ValidSupportStatus(SupportResolved))
	assert.False(t, ValidSupportStatus("SCHEDULED"))
}

func TestAppointment_IsActive(t *testing.T) {
	scheduled := &Appointment{Status: StatusScheduled}
	completed := &Appointment{Status: StatusCompleted}
	cancelled := &Appointment{Status: StatusCancelled}

	assert.True(t, scheduled.IsActive())
	assert.True(t, completed.IsActive())
	assert.False(t, cancelled.IsActive())
}

func TestAppointmentUpdate_IsEmpty(t *testing.T) {
	empty := &AppointmentUpdate{}
	assert.True(t, empty.IsEmpty())

	status := StatusCancelled
	withStatus := &AppointmentUpdate{Status: &status}
	assert.False(t, withStatus.IsEmpty())
}

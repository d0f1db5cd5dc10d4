package domain

import "time"

// Weekday numbering convention for the whole system: Monday=0 .. Sunday=6.
// The convention is fixed here and nowhere else; working_schedule.day_of_week
// stores exactly these values.

// WorkingDayRule recurring weekly template of open hours for one weekday
type WorkingDayRule struct {
	ID        int64
	DayOfWeek int // 0 = Monday .. 6 = Sunday
	StartHour int // 0..23
	EndHour   int // 0..23, StartHour < EndHour when IsWorking
	IsWorking bool
}

// NonWorkingDay one-off calendar-date exception (holiday, closure)
// overriding the weekly template. At most one record per date.
type NonWorkingDay struct {
	ID     int64
	Date   time.Time
	Reason string
}

// WeekdayIndex maps a timestamp onto the system weekday convention (Monday=0)
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfDay truncates a timestamp to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OpeningTime возвращает момент открытия в день t по правилу rule
func (r *WorkingDayRule) OpeningTime(t time.Time) time.Time {
	return StartOfDay(t).Add(time.Duration(r.StartHour) * time.Hour)
}

// ClosingTime возвращает момент закрытия в день t по правилу rule
func (r *WorkingDayRule) ClosingTime(t time.Time) time.Time {
	return StartOfDay(t).Add(time.Duration(r.EndHour) * time.Hour)
}

package get_available_days

import (
	"time"

	"psyscheduler/internal/domain"
)

// scanAvailableDays отбирает дни периода [from, to], на которые еще
// можно записаться. Оба аргумента уже нормализованы к началу дня.
//
// День доступен, если:
//   - он не входит в список нерабочих дней,
//   - для его дня недели есть правило с isWorking = true,
//   - после самой поздней записи дня до часа закрытия помещается
//     хотя бы minDurationMinutes минут.
func scanAvailableDays(
	from, to time.Time,
	rules []*domain.WorkingDayRule,
	appointments []*domain.Appointment,
	holidays []*domain.NonWorkingDay,
	minDurationMinutes int,
) []time.Time {
	rulesByWeekday := make(map[int]*domain.WorkingDayRule, len(rules))
	for _, rule := range rules {
		rulesByWeekday[rule.DayOfWeek] = rule
	}

	holidaySet := make(map[time.Time]struct{}, len(holidays))
	for _, holiday := range holidays {
		holidaySet[domain.StartOfDay(holiday.Date)] = struct{}{}
	}

	available := make([]time.Time, 0)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if _, isHoliday := holidaySet[day]; isHoliday {
			continue
		}

		rule, ok := rulesByWeekday[domain.WeekdayIndex(day)]
		if !ok || !rule.IsWorking {
			continue
		}

		latestEnd, found := latestEndTimeOnDay(appointments, day)
		if !found {
			available = append(available, day)
			continue
		}

		// Должна помещаться хотя бы минимальная запись до закрытия
		minEnd := latestEnd.Add(time.Duration(minDurationMinutes) * time.Minute)
		if rule.ClosingTime(day).After(minEnd) {
			available = append(available, day)
		}
	}

	return available
}

// latestEndTimeOnDay возвращает самый поздний endTime среди записей,
// заканчивающихся в день day
func latestEndTimeOnDay(appointments []*domain.Appointment, day time.Time) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, appt := range appointments {
		if !domain.StartOfDay(appt.EndTime).Equal(day) {
			continue
		}
		if !found || appt.EndTime.After(latest) {
			latest = appt.EndTime
			found = true
		}
	}
	return latest, found
}

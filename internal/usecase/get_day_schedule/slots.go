package get_day_schedule

import (
	"time"

	"psyscheduler/internal/domain"
	"psyscheduler/pkg/ptr"
)

// sameDayFilter фильтр неотменённых записей, начинающихся в день day
func sameDayFilter(day time.Time) domain.AppointmentsFilter {
	startOfDay := domain.StartOfDay(day)
	return domain.AppointmentsFilter{
		StartFrom:        ptr.Ptr(startOfDay),
		StartTo:          ptr.Ptr(startOfDay.AddDate(0, 0, 1)),
		ExcludeCancelled: true,
	}
}

// nextSlotStart вычисляет начало следующего слота на день day
//
// Без записей слот начинается с часа открытия. Иначе - после самого
// позднего конца записи плюс bufferMinutes. Записи размещаются строго
// последовательно, без заполнения промежутков.
func nextSlotStart(rule *domain.WorkingDayRule, appointments []*domain.Appointment, day time.Time, bufferMinutes int) time.Time {
	latestEnd, ok := latestEndTime(appointments)
	if !ok {
		return rule.OpeningTime(day)
	}
	return latestEnd.Add(time.Duration(bufferMinutes) * time.Minute)
}

// latestEndTime возвращает самый поздний endTime среди записей
func latestEndTime(appointments []*domain.Appointment) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, appt := range appointments {
		if !found || appt.EndTime.After(latest) {
			latest = appt.EndTime
			found = true
		}
	}
	return latest, found
}

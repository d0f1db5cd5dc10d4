package create_appointment

import (
	"fmt"
	"time"

	"psyscheduler/internal/domain"
	"psyscheduler/pkg/ptr"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// sameDayFilter фильтр неотменённых записей, начинающихся в день day
func sameDayFilter(day time.Time) domain.AppointmentsFilter {
	startOfDay := domain.StartOfDay(day)
	return domain.AppointmentsFilter{
		StartFrom:        ptr.Ptr(startOfDay),
		StartTo:          ptr.Ptr(startOfDay.AddDate(0, 0, 1)),
		ExcludeCancelled: true,
	}
}

// nextSlotStart вычисляет начало следующего слота: час открытия либо конец
// самой поздней записи дня плюс буфер. Промежутки после отмен не заполняются.
func nextSlotStart(rule *domain.WorkingDayRule, appointments []*domain.Appointment, day time.Time, bufferMinutes int) time.Time {
	var latestEnd time.Time
	found := false
	for _, appt := range appointments {
		if !found || appt.EndTime.After(latestEnd) {
			latestEnd = appt.EndTime
			found = true
		}
	}

	if !found {
		return rule.OpeningTime(day)
	}
	return latestEnd.Add(time.Duration(bufferMinutes) * time.Minute)
}

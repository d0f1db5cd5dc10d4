package get_day_schedule

import (
	"time"

	"psyscheduler/internal/domain"
	getDaySchedule "psyscheduler/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model: когда началась бы следующая запись
type DayScheduleResponse struct {
	Date      string `json:"date"`      // "2026-09-14"
	StartTime string `json:"startTime"` // ISO 8601
	StartHour int    `json:"startHour"` // Час открытия по правилу дня
	EndHour   int    `json:"endHour"`   // Час закрытия по правилу дня
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(date time.Time, resp *getDaySchedule.Response) *DayScheduleResponse {
	return &DayScheduleResponse{
		Date:      date.Format(domain.DateFormat),
		StartTime: resp.StartTime.Format(time.RFC3339),
		StartHour: resp.Rule.StartHour,
		EndHour:   resp.Rule.EndHour,
	}
}

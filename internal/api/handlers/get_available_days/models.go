package get_available_days

import (
	"psyscheduler/internal/domain"
	getAvailableDays "psyscheduler/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	Days []string `json:"days"` // Даты в формате "2026-09-14"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]string, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, day.Format(domain.DateFormat))
	}
	return &AvailableDaysResponse{Days: days}
}

package non_working_days

import (
	"time"

	"psyscheduler/internal/domain"
	"psyscheduler/internal/service/schedule/models"
)

// CreateNonWorkingDayRequest HTTP request model
type CreateNonWorkingDayRequest struct {
	Date   string  `json:"date" validate:"required"` // "2026-03-08"
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateNonWorkingDayRequest) ToServiceRequest() (*models.CreateNonWorkingDayRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &models.CreateNonWorkingDayRequest{
		Date:   date,
		Reason: r.Reason,
	}, nil
}

package create_admin_appointment

import (
	"time"

	"psyscheduler/internal/domain"
	createAdminAppointment "psyscheduler/internal/usecase/create_admin_appointment"
)

// CreateAdminAppointmentRequest HTTP request model
// Интервал задается явно, статус опционален
type CreateAdminAppointmentRequest struct {
	ClientID  int64   `json:"clientId" validate:"required,gt=0"`
	ServiceID int64   `json:"serviceId" validate:"required,gt=0"`
	StartTime string  `json:"startTime" validate:"required"` // ISO 8601
	EndTime   string  `json:"endTime" validate:"required"`   // ISO 8601
	Status    *string `json:"status,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID        int64   `json:"id"`
	ClientID  int64   `json:"clientId"`
	ServiceID int64   `json:"serviceId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAdminAppointmentRequest) ToUseCaseRequest() (*createAdminAppointment.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	req := &createAdminAppointment.Request{
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		StartTime: startTime,
		EndTime:   endTime,
		Note:      r.Note,
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAdminAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        resp.ID,
		ClientID:  resp.ClientID,
		ServiceID: resp.ServiceID,
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Status:    string(resp.Status),
		Note:      resp.Note,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

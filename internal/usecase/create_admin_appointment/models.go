package create_admin_appointment

import (
	"time"

	"psyscheduler/internal/domain"
)

// Request модель запроса администратора на создание записи.
// В отличие от клиентского сценария интервал задается явно,
// последовательное размещение слота не применяется
type Request struct {
	ClientID  int64
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time
	Status    *domain.AppointmentStatus // nil - SCHEDULED
	Note      *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time
	Status    domain.AppointmentStatus
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:        appt.ID,
		ClientID:  appt.ClientID,
		ServiceID: appt.ServiceID,
		StartTime: appt.StartTime,
		EndTime:   appt.EndTime,
		Status:    appt.Status,
		Note:      appt.Note,
		CreatedAt: appt.CreatedAt,
		UpdatedAt: appt.UpdatedAt,
	}
}

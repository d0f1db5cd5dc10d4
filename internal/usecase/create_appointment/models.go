package create_appointment

import (
	"time"

	"psyscheduler/internal/domain"
)

// Request модель запроса на создание записи
// Время начала не передается: слот вычисляется автоматически
type Request struct {
	ClientID  int64     // Первичный ID клиента либо его telegram ID
	ServiceID int64     // ID услуги
	Date      time.Time // Желаемый день (время внутри дня игнорируется)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time
	Status    domain.AppointmentStatus
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
		CreatedAt: appt.CreatedAt,
		UpdatedAt: appt.UpdatedAt,
	}
}

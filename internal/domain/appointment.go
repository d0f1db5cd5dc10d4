package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment represents a booked consultation in the system
type Appointment struct {
	ID        int64
	ClientID  int64
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus
	Note      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies calendar capacity.
// Cancelled appointments are kept for history but never block a slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// Duration returns the booked length of the appointment
func (a *Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// ValidStatus returns true if s is one of the known appointment statuses
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// AppointmentUpdate частичное обновление записи: применяются только non-nil поля.
// Слотовые инварианты при этом не перепроверяются — см. флаг
// SkipScheduleValidation на уровне сервиса.
type AppointmentUpdate struct {
	ClientID  *int64
	ServiceID *int64
	StartTime *time.Time
	EndTime   *time.Time
	Status    *AppointmentStatus
	Note      *string
}

// IsEmpty returns true if the update would change nothing
func (u *AppointmentUpdate) IsEmpty() bool {
	return u.ClientID == nil && u.ServiceID == nil && u.StartTime == nil &&
		u.EndTime == nil && u.Status == nil && u.Note == nil
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	ClientID         *int64             // Фильтр по клиенту (опционально)
	ServiceID        *int64             // Фильтр по услуге (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	StartFrom        *time.Time         // Начало периода по startTime (опционально)
	StartTo          *time.Time         // Конец периода по startTime (опционально)
	ExcludeCancelled bool               // Исключать ли отменённые записи
	SortAsc          bool               // Сортировка по startTime (по умолчанию DESC)
	Limit            int                // 0 = без ограничения
	Offset           int
}

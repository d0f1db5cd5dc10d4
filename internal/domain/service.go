package domain

import "time"

// Service catalog entry: what can be booked and how long it occupies the calendar
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceUpdate частичное обновление услуги: применяются только non-nil поля.
// Изменение длительности не пересчитывает уже созданные записи.
type ServiceUpdate struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *float64
}

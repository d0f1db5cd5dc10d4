package models

import (
	"time"

	"psyscheduler/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей с фильтрацией
type ListAppointmentsRequest struct {
	ClientID  *int64     `json:"clientId,omitempty"`  // Первичный ID клиента либо его telegram ID
	ServiceID *int64     `json:"serviceId,omitempty"` // Фильтр по услуге
	StartFrom *time.Time `json:"startFrom,omitempty"` // Начало периода (включительно)
	StartTo   *time.Time `json:"startTo,omitempty"`   // Конец периода (исключительно)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу
	// SortDirection порядок по startTime: "asc" или "desc", по умолчанию desc
	SortDirection *string `json:"sortDirection,omitempty"`
	Page          int     `json:"page,omitempty"`
	Limit         int     `json:"limit,omitempty"`
}

// UpdateAppointmentRequest запрос на частичное обновление записи
type UpdateAppointmentRequest struct {
	ClientID  *int64     `json:"clientId,omitempty"` // Первичный ID клиента либо его telegram ID
	ServiceID *int64     `json:"serviceId,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Note      *string    `json:"note,omitempty"`

	// SkipScheduleValidation отключает проверку записи против рабочего
	// расписания. Используется администратором для переноса записи
	// вне обычных часов приёма
	SkipScheduleValidation bool `json:"skipScheduleValidation,omitempty"`
}

// IsEmpty проверяет, что запрос не содержит ни одного поля для обновления
func (r *UpdateAppointmentRequest) IsEmpty() bool {
	return r.ClientID == nil && r.ServiceID == nil && r.StartTime == nil &&
		r.EndTime == nil && r.Status == nil && r.Note == nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"clientId"`
	ServiceID int64     `json:"serviceId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaginationMeta метаданные пагинации
type PaginationMeta struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// AppointmentListResponse ответ со списком записей и пагинацией
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Meta         PaginationMeta        `json:"meta"`
}

// CalendarResponse календарь периода: записи, сгруппированные по календарным
// дням (ключ - дата YYYY-MM-DD). Будние дни периода присутствуют всегда,
// в том числе с пустыми списками; ключи для выходных появляются только если
// на них есть записи
type CalendarResponse map[string][]AppointmentResponse

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:        a.ID,
		ClientID:  a.ClientID,
		ServiceID: a.ServiceID,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    string(a.Status),
		Note:      a.Note,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		if resp := FromDomainAppointment(appt); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// NewPaginationMeta вычисляет метаданные пагинации
func NewPaginationMeta(totalItems, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	meta := PaginationMeta{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
	}

	if page < totalPages {
		next := page + 1
		meta.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		meta.PrevPage = &prev
	}

	return meta
}

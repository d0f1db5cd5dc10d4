package models

import (
	"time"

	"psyscheduler/internal/domain"
)

// Request модели

// CreateSupportRequest запрос на создание обращения в поддержку
type CreateSupportRequest struct {
	ClientID    int64  `json:"clientId"` // Первичный ID клиента либо его telegram ID
	Description string `json:"description"`
}

// UpdateStatusRequest запрос на обновление статуса обращения
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListSupportRequests запрос на получение списка обращений
type ListSupportRequests struct {
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page,omitempty"`
	Limit  int     `json:"limit,omitempty"`
}

// Response модели

// SupportResponse ответ с данными обращения
type SupportResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"clientId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PaginationMeta метаданные пагинации
type PaginationMeta struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	NextPage    *int `json:"nextPage"`
	PrevPage    *int `json:"prevPage"`
}

// SupportListResponse ответ со списком обращений и пагинацией
type SupportListResponse struct {
	Requests []SupportResponse `json:"requests"`
	Meta     PaginationMeta    `json:"meta"`
}

// Методы конвертации

// FromDomainSupportRequest конвертирует domain модель в DTO
func FromDomainSupportRequest(r *domain.SupportRequest) *SupportResponse {
	if r == nil {
		return nil
	}
	return &SupportResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainSupportRequestList конвертирует список domain моделей в DTO
func FromDomainSupportRequestList(requests []*domain.SupportRequest) []SupportResponse {
	result := make([]SupportResponse, 0, len(requests))
	for _, req := range requests {
		if resp := FromDomainSupportRequest(req); resp != nil {
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

package models

import (
	"time"

	"psyscheduler/internal/domain"
)

// Request модели

// CreateClientRequest запрос на создание клиента
type CreateClientRequest struct {
	Name        string  `json:"name"`
	TelegramID  *int64  `json:"telegramId,omitempty"`
	TgNickname  *string `json:"tgNickname,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Timezone    *int    `json:"timezone,omitempty"` // Смещение от UTC в часах
}

// UpdateClientRequest запрос на частичное обновление клиента
type UpdateClientRequest struct {
	Name        *string `json:"name,omitempty"`
	TelegramID  *int64  `json:"telegramId,omitempty"`
	TgNickname  *string `json:"tgNickname,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Timezone    *int    `json:"timezone,omitempty"`
}

// IsEmpty проверяет, что запрос не содержит ни одного поля для обновления
func (r *UpdateClientRequest) IsEmpty() bool {
	return r.Name == nil && r.TelegramID == nil && r.TgNickname == nil &&
		r.PhoneNumber == nil && r.Timezone == nil
}

// ListClientsRequest запрос на получение списка клиентов
type ListClientsRequest struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// Response модели

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	TelegramID  *int64  `json:"telegramId,omitempty"`
	TgNickname  *string `json:"tgNickname,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Timezone    *int    `json:"timezone,omitempty"`

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

// ClientListResponse ответ со списком клиентов и пагинацией
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Meta    PaginationMeta   `json:"meta"`
}

// Методы конвертации

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		TelegramID:  c.TelegramID,
		TgNickname:  c.TgNickname,
		PhoneNumber: c.PhoneNumber,
		Timezone:    c.Timezone,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) []ClientResponse {
	result := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		if resp := FromDomainClient(c); resp != nil {
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

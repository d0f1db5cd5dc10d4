package models

import (
	"time"

	"psyscheduler/internal/domain"
)

// Request модели

// UpdateRuleRequest запрос на обновление правила рабочего дня
type UpdateRuleRequest struct {
	StartHour int  `json:"startHour"`
	EndHour   int  `json:"endHour"`
	IsWorking bool `json:"isWorking"`
}

// CreateNonWorkingDayRequest запрос на создание нерабочего дня
type CreateNonWorkingDayRequest struct {
	Date   time.Time `json:"date"`
	Reason *string   `json:"reason,omitempty"`
}

// Response модели

// RuleResponse ответ с правилом рабочего дня
type RuleResponse struct {
	ID        int64 `json:"id"`
	DayOfWeek int   `json:"dayOfWeek"` // 0 = понедельник .. 6 = воскресенье
	StartHour int   `json:"startHour"`
	EndHour   int   `json:"endHour"`
	IsWorking bool  `json:"isWorking"`
}

// RuleListResponse ответ с недельным шаблоном
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// NonWorkingDayResponse ответ с нерабочим днём
type NonWorkingDayResponse struct {
	ID     int64  `json:"id"`
	Date   string `json:"date"` // "2026-03-08"
	Reason string `json:"reason,omitempty"`
}

// NonWorkingDayListResponse ответ со списком нерабочих дней
type NonWorkingDayListResponse struct {
	Days []NonWorkingDayResponse `json:"days"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.WorkingDayRule) *RuleResponse {
	if r == nil {
		return nil
	}
	return &RuleResponse{
		ID:        r.ID,
		DayOfWeek: r.DayOfWeek,
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
		IsWorking: r.IsWorking,
	}
}

// FromDomainRuleList конвертирует список правил в DTO
func FromDomainRuleList(rules []*domain.WorkingDayRule) *RuleListResponse {
	resp := &RuleListResponse{Rules: make([]RuleResponse, 0, len(rules))}
	for _, rule := range rules {
		if r := FromDomainRule(rule); r != nil {
			resp.Rules = append(resp.Rules, *r)
		}
	}
	return resp
}

// FromDomainNonWorkingDay конвертирует domain модель в DTO
func FromDomainNonWorkingDay(d *domain.NonWorkingDay) *NonWorkingDayResponse {
	if d == nil {
		return nil
	}
	return &NonWorkingDayResponse{
		ID:     d.ID,
		Date:   d.Date.Format(domain.DateFormat),
		Reason: d.Reason,
	}
}

// FromDomainNonWorkingDayList конвертирует список нерабочих дней в DTO
func FromDomainNonWorkingDayList(days []*domain.NonWorkingDay) *NonWorkingDayListResponse {
	resp := &NonWorkingDayListResponse{Days: make([]NonWorkingDayResponse, 0, len(days))}
	for _, day := range days {
		if d := FromDomainNonWorkingDay(day); d != nil {
			resp.Days = append(resp.Days, *d)
		}
	}
	return resp
}

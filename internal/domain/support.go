package domain

import "time"

// SupportStatus represents the status of a support request
type SupportStatus string

const (
	SupportPending    SupportStatus = "PENDING"
	SupportInProgress SupportStatus = "IN_PROGRESS"
	SupportResolved   SupportStatus = "RESOLVED"
)

// SupportRequest обращение клиента в поддержку
type SupportRequest struct {
	ID          int64
	ClientID    int64
	Description string
	Status      SupportStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidSupportStatus returns true if s is one of the known support statuses
func ValidSupportStatus(s SupportStatus) bool {
	switch s {
	case SupportPending, SupportInProgress, SupportResolved:
		return true
	}
	return false
}

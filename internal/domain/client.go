package domain

import "time"

// Client represents a person booking consultations.
// TelegramID is the external messaging-platform identifier; lookups accept
// either the primary ID or the telegram ID.
type Client struct {
	ID          int64
	Name        string
	TelegramID  *int64
	TgNickname  *string
	PhoneNumber *string
	Timezone    *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClientUpdate частичное обновление клиента: применяются только non-nil поля
type ClientUpdate struct {
	Name        *string
	TelegramID  *int64
	TgNickname  *string
	PhoneNumber *string
	Timezone    *int
}

package domain

// Default configuration values
const (
	// DefaultBufferMinutes фиксированный промежуток между концом одной записи
	// и началом следующей; переопределяется в config.toml
	DefaultBufferMinutes = 10

	// DefaultAvailabilityMonths горизонт поиска доступных дней по умолчанию
	DefaultAvailabilityMonths = 1

	DefaultPageLimit = 10
)

// Business validation constants
const (
	MinHour = 0
	MaxHour = 23

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxNoteLength        = 500
	MaxDescriptionLength = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

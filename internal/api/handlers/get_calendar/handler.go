package get_calendar

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	"psyscheduler/internal/service/appointments"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный период: from должен быть не позже to"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.RequireQueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /schedule/calendar - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.RequireQueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /schedule/calendar - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetCalendar(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidRange):
			h.logger.Warn("GET /schedule/calendar - Invalid range")
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /schedule/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

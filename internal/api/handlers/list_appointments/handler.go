package list_appointments

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	"psyscheduler/internal/service/appointments"
	"psyscheduler/internal/service/appointments/models"
)

const (
	msgInvalidQuery   = "некорректные параметры запроса"
	msgInvalidRange   = "некорректный период: from должен быть не позже to"
	msgClientNotFound = "клиент не найден"
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

// Handle GET /api/v1/appointments
// Query: clientId, serviceId, from, to, status, sortDirection, page, limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrClientNotFound):
			h.logger.Warn("GET /appointments - Client not found: client_id=%v", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, appointments.ErrInvalidRange):
			h.logger.Warn("GET /appointments - Invalid range")
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseQuery(r *http.Request) (*models.ListAppointmentsRequest, error) {
	clientID, err := handlers.QueryInt64(r, "clientId")
	if err != nil {
		return nil, err
	}

	serviceID, err := handlers.QueryInt64(r, "serviceId")
	if err != nil {
		return nil, err
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		return nil, err
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		return nil, err
	}

	page, err := handlers.QueryInt(r, "page", 1)
	if err != nil {
		return nil, err
	}

	limit, err := handlers.QueryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}

	return &models.ListAppointmentsRequest{
		ClientID:      clientID,
		ServiceID:     serviceID,
		StartFrom:     from,
		StartTo:       to,
		Status:        handlers.QueryString(r, "status"),
		SortDirection: handlers.QueryString(r, "sortDirection"),
		Page:          page,
		Limit:         limit,
	}, nil
}

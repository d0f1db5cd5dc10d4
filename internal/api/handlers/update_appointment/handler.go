package update_appointment

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	"psyscheduler/internal/service/appointments"
	"psyscheduler/internal/service/appointments/models"
)

const (
	msgInvalidID           = "некорректный идентификатор записи"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgAppointmentNotFound = "запись не найдена"
	msgClientNotFound      = "клиент не найден"
	msgDayClosed           = "новая дата не является рабочим днём"
	msgNonWorkingDay       = "новая дата отмечена как нерабочая"
	msgOutsideHours        = "новый интервал выходит за рабочие часы"
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

// Handle PATCH /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrClientNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Client not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, appointments.ErrDayClosed):
			h.logger.Warn("PATCH /appointments/{id} - Day closed: appointment_id=%d", id)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, appointments.ErrNonWorkingDay):
			h.logger.Warn("PATCH /appointments/{id} - Non-working day: appointment_id=%d", id)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, appointments.ErrOutsideWorkingHours):
			h.logger.Warn("PATCH /appointments/{id} - Outside working hours: appointment_id=%d", id)
			handlers.RespondConflict(w, msgOutsideHours)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%d, %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Updated: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

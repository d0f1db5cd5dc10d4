package create_admin_appointment

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	createAdminAppointment "psyscheduler/internal/usecase/create_admin_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgClientNotFound     = "клиент не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgDayClosed          = "выбранный день не является рабочим"
	msgNonWorkingDay      = "выбранная дата отмечена как нерабочая"
	msgOutsideHours       = "интервал записи выходит за рабочие часы"
)

type Handler struct {
	useCase CreateAdminAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAdminAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminAppointmentRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/appointments - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAdminAppointment.ErrClientNotFound):
			h.logger.Warn("POST /admin/appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAdminAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /admin/appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAdminAppointment.ErrDayClosed):
			h.logger.Warn("POST /admin/appointments - Day closed: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgDayClosed)

		case errors.Is(err, createAdminAppointment.ErrNonWorkingDay):
			h.logger.Warn("POST /admin/appointments - Non-working day: start=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createAdminAppointment.ErrEndOfDayExceeded):
			h.logger.Warn("POST /admin/appointments - Outside working hours: start=%s", req.StartTime)
			handlers.RespondConflict(w, msgOutsideHours)

		case errors.Is(err, createAdminAppointment.ErrInvalidInput):
			h.logger.Warn("POST /admin/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/appointments - Failed to create appointment: client_id=%d, error=%v",
				req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/appointments - Appointment created: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

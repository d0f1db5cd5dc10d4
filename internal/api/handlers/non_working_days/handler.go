package non_working_days

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	"psyscheduler/internal/service/schedule"
)

const (
	msgInvalidID          = "некорректный идентификатор нерабочего дня"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDayNotFound        = "нерабочий день не найден"
	msgDayExists          = "нерабочий день на эту дату уже существует"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/schedule/non-working-days
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateNonWorkingDayRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /schedule/non-working-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /schedule/non-working-days - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.CreateNonWorkingDay(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNonWorkingDayExists):
			h.logger.Warn("POST /schedule/non-working-days - Already exists: date=%s", req.Date)
			handlers.RespondConflict(w, msgDayExists)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /schedule/non-working-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedule/non-working-days - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/non-working-days - Created: id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/schedule/non-working-days?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /schedule/non-working-days - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /schedule/non-working-days - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListNonWorkingDays(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule/non-working-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/non-working-days - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/schedule/non-working-days/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /schedule/non-working-days/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteNonWorkingDay(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrNonWorkingDayNotFound):
			h.logger.Warn("DELETE /schedule/non-working-days/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgDayNotFound)

		default:
			h.logger.Error("DELETE /schedule/non-working-days/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedule/non-working-days/{id} - Deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

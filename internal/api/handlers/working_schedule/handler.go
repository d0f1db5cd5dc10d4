package working_schedule

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	"psyscheduler/internal/service/schedule"
	"psyscheduler/internal/service/schedule/models"
)

const (
	msgInvalidID          = "некорректный идентификатор правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRuleNotFound       = "правило рабочего дня не найдено"
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

// HandleList GET /api/v1/schedule/rules
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRules(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/schedule/rules/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PUT /schedule/rules/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateRule(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrRuleNotFound):
			h.logger.Warn("PUT /schedule/rules/{id} - Not found: rule_id=%d", id)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/rules/{id} - Invalid input: rule_id=%d, %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule/rules/{id} - Failed: rule_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/rules/{id} - Updated: rule_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_day_schedule

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	getDaySchedule "psyscheduler/internal/usecase/get_day_schedule"
)

const (
	msgInvalidDate = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgDayClosed   = "выбранный день не является рабочим"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/day?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.RequireQueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /schedule/day - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrDayClosed):
			h.logger.Warn("GET /schedule/day - Day closed: date=%s", r.URL.Query().Get("date"))
			handlers.RespondNotFound(w, msgDayClosed)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule/day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/day - Failed to compute day schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/day - Next slot computed: date=%s", r.URL.Query().Get("date"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(date, result))
}

package get_available_days

import (
	"errors"
	"net/http"
	"time"

	"psyscheduler/internal/api/handlers"
	"psyscheduler/internal/domain"
	getAvailableDays "psyscheduler/internal/usecase/get_available_days"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный период: from должен быть не позже to"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/available-days?from=YYYY-MM-DD&to=YYYY-MM-DD
// Оба параметра опциональны: по умолчанию период от сегодня на месяц вперед
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /schedule/available-days - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /schedule/available-days - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableDays.Request{}
	if from != nil {
		req.From = *from
	} else {
		req.From = time.Now()
	}
	if to != nil {
		req.To = *to
	} else {
		req.To = req.From.AddDate(0, domain.DefaultAvailabilityMonths, 0)
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrInvalidRange):
			h.logger.Warn("GET /schedule/available-days - Invalid range: from=%s, to=%s",
				req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /schedule/available-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/available-days - Failed to scan availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/available-days - Found %d available days", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

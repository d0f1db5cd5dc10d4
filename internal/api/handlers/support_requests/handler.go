package support_requests

import (
	"errors"
	"net/http"

	"psyscheduler/internal/api/handlers"
	supportService "psyscheduler/internal/service/support"
	"psyscheduler/internal/service/support/models"
)

const (
	msgInvalidID          = "некорректный идентификатор обращения"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidQuery       = "некорректные параметры запроса"
	msgRequestNotFound    = "обращение не найдено"
	msgClientNotFound     = "клиент не найден"
)

type Handler struct {
	service SupportService
	logger  Logger
}

func NewHandler(service SupportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/support-requests
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, supportService.ErrClientNotFound):
			h.logger.Warn("POST /support-requests - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, supportService.ErrInvalidInput):
			h.logger.Warn("POST /support-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /support-requests - Failed: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /support-requests - Created: request_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/support-requests/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("GET /support-requests/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, supportService.ErrRequestNotFound):
			h.logger.Warn("GET /support-requests/{id} - Not found: request_id=%d", id)
			handlers.RespondNotFound(w, msgRequestNotFound)

		default:
			h.logger.Error("GET /support-requests/{id} - Failed: request_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/support-requests?status=PENDING&page=1&limit=10
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.QueryInt(r, "page", 1)
	if err != nil {
		h.logger.Warn("GET /support-requests - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	limit, err := handlers.QueryInt(r, "limit", 0)
	if err != nil {
		h.logger.Warn("GET /support-requests - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListSupportRequests{
		Status: handlers.QueryString(r, "status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, supportService.ErrInvalidInput):
			h.logger.Warn("GET /support-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /support-requests - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdateStatus PATCH /api/v1/support-requests/{id}/status
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /support-requests/{id}/status - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /support-requests/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, supportService.ErrRequestNotFound):
			h.logger.Warn("PATCH /support-requests/{id}/status - Not found: request_id=%d", id)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, supportService.ErrInvalidInput):
			h.logger.Warn("PATCH /support-requests/{id}/status - Invalid input: request_id=%d, %v", id, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /support-requests/{id}/status - Failed: request_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /support-requests/{id}/status - Updated: request_id=%d, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

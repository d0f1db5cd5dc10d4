package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psyscheduler/internal/domain"
	createAppointment "psyscheduler/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp   *createAppointment.Response
	err    error
	gotReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:        7,
		ClientID:  1,
		ServiceID: 10,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    domain.StatusScheduled,
	}}

	rec := doRequest(t, uc, `{"clientId": 1, "serviceId": 10, "date": "2026-03-02"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-03-02T09:00:00Z", resp.StartTime)
	assert.Equal(t, "SCHEDULED", resp.Status)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"клиент не найден", createAppointment.ErrClientNotFound, http.StatusNotFound},
		{"услуга не найдена", createAppointment.ErrServiceNotFound, http.StatusNotFound},
		{"день закрыт", createAppointment.ErrDayClosed, http.StatusBadRequest},
		{"нерабочий день", createAppointment.ErrNonWorkingDay, http.StatusBadRequest},
		{"день заполнен", createAppointment.ErrEndOfDayExceeded, http.StatusConflict},
		{"внутренняя ошибка", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.useCaseErr},
				`{"clientId": 1, "serviceId": 10, "date": "2026-03-02"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"пустое тело", ""},
		{"не JSON", "{"},
		{"нулевой clientId", `{"clientId": 0, "serviceId": 10, "date": "2026-03-02"}`},
		{"без даты", `{"clientId": 1, "serviceId": 10}`},
		{"неизвестное поле", `{"clientId": 1, "serviceId": 10, "date": "2026-03-02", "extra": true}`},
		{"кривая дата", `{"clientId": 1, "serviceId": 10, "date": "02.03.2026"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(t, uc, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq)
		})
	}
}

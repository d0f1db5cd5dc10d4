package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"psyscheduler/internal/domain"
)

// PathInt64 извлекает целочисленный path-параметр
func PathInt64(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %q", name)
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid path parameter %q: %s", name, raw)
	}

	return value, nil
}

// QueryInt извлекает необязательный целочисленный query-параметр
// Возвращает fallback, если параметр не передан
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter %q: %s", name, raw)
	}

	return value, nil
}

// QueryInt64 извлекает необязательный int64 query-параметр
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid query parameter %q: %s", name, raw)
	}

	return &value, nil
}

// QueryString извлекает необязательный строковый query-параметр
func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryDate извлекает необязательный query-параметр с датой в формате YYYY-MM-DD
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid query parameter %q: expected YYYY-MM-DD, got %s", name, raw)
	}

	return &value, nil
}

// RequireQueryDate извлекает обязательный query-параметр с датой
func RequireQueryDate(r *http.Request, name string) (time.Time, error) {
	value, err := QueryDate(r, name)
	if err != nil {
		return time.Time{}, err
	}
	if value == nil {
		return time.Time{}, fmt.Errorf("missing query parameter %q", name)
	}
	return *value, nil
}

package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit ограничивает входящий поток запросов token-bucket лимитером.
// Лимит общий на процесс: сервис обслуживает одного специалиста,
// и per-client ограничение здесь не требуется.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "превышен лимит запросов"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

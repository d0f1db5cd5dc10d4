package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDKey ключ контекста с идентификатором запроса
const RequestIDKey contextKey = "requestID"

// RequestIDHeader заголовок, через который идентификатор пробрасывается
// от шлюза и возвращается клиенту
const RequestIDHeader = "X-Request-ID"

// RequestID присваивает каждому запросу идентификатор: берет его из заголовка
// X-Request-ID, если шлюз уже назначил, иначе генерирует новый
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext извлекает идентификатор запроса из контекста
func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader задает заголовок, в котором передается идентификатор запроса
const RequestIDHeader = "X-Request-ID"

type contextKey string

// ContextKeyRequestID используется как ключ контекста для идентификатора запроса
const ContextKeyRequestID contextKey = "request_id"

// RequestIDMiddleware берет идентификатор из заголовка запроса или создает
// новый, кладет его в контекст и возвращает в заголовке ответа.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), ContextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext возвращает идентификатор запроса или пустую строку
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(ContextKeyRequestID).(string)
	return requestID
}

package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDMiddleware tags each request with a generated id, echoed in the
// X-Request-ID response header, so log lines from one request can be
// correlated.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)
		log.Printf("INFO: %s %s request_id=%s", r.Method, r.URL.Path, requestID)

		ctx := context.WithValue(r.Context(), "request_id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

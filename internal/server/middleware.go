package server

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestID tags every request with a correlation ID, echoed in the
// X-Request-ID response header and the request log line.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%v)", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

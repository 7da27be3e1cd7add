package middleware

import (
	"net/http"
	"time"

	"petclinic/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog loguea una línea por request.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  RequestIDFrom(r.Context()),
			}
			if status >= http.StatusInternalServerError {
				log.Warn("request", fields)
				return
			}
			log.Debug("request", fields)
		})
	}
}

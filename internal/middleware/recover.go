package middleware

import (
	"net/http"
	"runtime/debug"

	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/web"
)

// Recover convierte un panic en la vista de error (500) y lo loguea con el stack.
func Recover(log logger.Logger, rd web.Renderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"panic":      rec,
					"path":       r.URL.Path,
					"request_id": RequestIDFrom(r.Context()),
					"stack":      string(debug.Stack()),
				})
				web.InternalError(w, r, rd)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

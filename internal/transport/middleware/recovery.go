package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/frahmantamala/attendance-system/pkg/logger"
)

// Recovery turns a panic into the generic 500 body. The panic value and stack
// are logged, never written to the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.From(r.Context()).Error("panic recovered",
					"error", rec,
					"method", r.Method,
					"url", r.URL.String(),
					"stack", string(debug.Stack()))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":500,"message":"Internal Server Error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

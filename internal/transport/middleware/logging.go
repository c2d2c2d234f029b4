package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/attendance-system/pkg/logger"
	"github.com/go-chi/chi/middleware"
)

// maxLoggedBody caps how much of a request or response body is logged.
const maxLoggedBody = 4096

// sensitiveFields are matched case-insensitively against header names and
// JSON keys; matching values are masked.
var sensitiveFields = []string{
	"authorization",
	"cookie",
	"token",
	"secret",
	"dateofbirth",
	"email",
}

// Logging logs every request and its response through the request-scoped
// logger so both lines carry the trace id.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := logger.From(r.Context())
		reqID := middleware.GetReqID(r.Context())

		logRequest(log, r, reqID)

		ww := &responseWriter{ResponseWriter: w, body: &bytes.Buffer{}}
		next.ServeHTTP(ww, r)

		logResponse(r, log, ww, time.Since(start), reqID)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	truncated  bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	room := maxLoggedBody - rw.body.Len()
	if len(b) > room {
		rw.truncated = true
	}
	if room > 0 {
		if len(b) < room {
			room = len(b)
		}
		rw.body.Write(b[:room])
	}
	return rw.ResponseWriter.Write(b)
}

// replayBody hands the handler the logged prefix followed by the unread rest
// of the original body.
type replayBody struct {
	io.Reader
	io.Closer
}

func logRequest(log *slog.Logger, r *http.Request, reqID string) {
	var prefix []byte
	if r.Body != nil && r.Body != http.NoBody {
		prefix, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
		r.Body = replayBody{
			Reader: io.MultiReader(bytes.NewReader(prefix), r.Body),
			Closer: r.Body,
		}
	}
	truncated := len(prefix) > maxLoggedBody

	log.Info("incoming request",
		"request_id", reqID,
		"method", r.Method,
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
		"headers", filterSensitiveHeaders(r.Header),
		"body", loggedBody(prefix, truncated),
	)
}

func logResponse(r *http.Request, log *slog.Logger, rw *responseWriter, duration time.Duration, reqID string) {
	statusCode := rw.statusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	level := slog.LevelInfo
	switch {
	case statusCode >= 500:
		level = slog.LevelError
	case statusCode >= 400:
		level = slog.LevelWarn
	}

	log.Log(r.Context(), level, "response",
		"request_id", reqID,
		"method", r.Method,
		"path", r.URL.Path,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
		"body", loggedBody(rw.body.Bytes(), rw.truncated),
	)
}

// loggedBody masks a captured body. A truncated body cannot be parsed, so
// only its size is logged.
func loggedBody(b []byte, truncated bool) string {
	if truncated {
		return fmt.Sprintf("[TRUNCATED - over %d bytes]", maxLoggedBody)
	}
	return filterSensitiveBody(b)
}

func isSensitive(name string) bool {
	lower := strings.ToLower(name)
	for _, field := range sensitiveFields {
		if strings.Contains(lower, field) {
			return true
		}
	}
	return false
}

func filterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string, len(headers))
	for name, values := range headers {
		if isSensitive(name) {
			filtered[name] = "[FILTERED]"
			continue
		}
		filtered[name] = strings.Join(values, ", ")
	}
	return filtered
}

// filterSensitiveBody masks sensitive keys in a JSON body. Anything that is
// not valid JSON is logged as-is.
func filterSensitiveBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}

	filtered, err := json.Marshal(filterSensitiveJSON(data))
	if err != nil {
		return "[ERROR - Failed to marshal filtered JSON]"
	}
	return string(filtered)
}

func filterSensitiveJSON(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		filtered := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitive(key) {
				filtered[key] = "[FILTERED]"
			} else {
				filtered[key] = filterSensitiveJSON(value)
			}
		}
		return filtered
	case []interface{}:
		filtered := make([]interface{}, len(v))
		for i, item := range v {
			filtered[i] = filterSensitiveJSON(item)
		}
		return filtered
	default:
		return v
	}
}

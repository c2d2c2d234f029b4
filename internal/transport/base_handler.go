package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/frahmantamala/attendance-system/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

// IDPattern restricts {id} route params to UUIDs so any other value falls
// through to the router's 404.
const IDPattern = "{id:[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}}"

const internalServerError = "Internal Server Error"

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// Log returns the request-scoped logger when the request-id middleware set
// one, and the handler logger otherwise.
func (h *BaseHandler) Log(r *http.Request) *slog.Logger {
	if l, ok := logger.FromContext(r.Context()); ok {
		return l
	}
	return h.Logger
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteStatus answers with a bare status code and no body.
func (h *BaseHandler) WriteStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]interface{}{
		"code":    status,
		"message": message,
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// WriteInternalError answers 500 without exposing the cause.
func (h *BaseHandler) WriteInternalError(w http.ResponseWriter) {
	h.WriteError(w, http.StatusInternalServerError, internalServerError)
}

// WriteAppError renders an AppError in its structured envelope.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, appErr *errors.AppError) {
	status, body := appErr.ToHTTPResponse()
	h.WriteJSON(w, status, body)
}

// ParseID reads the {id} route param. ok is false when it is not a UUID.
func (h *BaseHandler) ParseID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// DecodeJSON decodes the request body into dst. A malformed body comes back
// as the invalid-request-body validation error.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) *errors.AppError {
	if r.Body == nil {
		return errors.NewValidationError("invalid request body", errors.ErrCodeInvalidRequestBody)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Log(r).Warn("invalid request body", "error", err)
		return errors.NewValidationError("invalid request body", errors.ErrCodeInvalidRequestBody).WithCause(err)
	}
	return nil
}

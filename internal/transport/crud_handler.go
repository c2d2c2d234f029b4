package transport

import (
	"context"
	"net/http"

	errors "github.com/frahmantamala/attendance-system/internal"
	"github.com/google/uuid"
)

// Validatable is implemented by every create and update request body.
type Validatable interface {
	Validate() *errors.AppError
}

// CRUDService is the service surface a CRUDHandler drives. GetByID returns
// nil for an unknown id; Update and Delete report false.
type CRUDService[C, U, R any] interface {
	GetAll(ctx context.Context) ([]R, error)
	GetByID(ctx context.Context, id uuid.UUID) (*R, error)
	Create(ctx context.Context, req C) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req U) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CRUDHandler serves the five resource endpoints for one entity. C and U are
// the create and update bodies, R the response.
type CRUDHandler[C Validatable, U Validatable, R any] struct {
	*BaseHandler
	Service CRUDService[C, U, R]

	singular string
	plural   string
}

// NewCRUDHandler builds a handler; singular and plural name the entity in
// logs and in the 404 message.
func NewCRUDHandler[C Validatable, U Validatable, R any](base *BaseHandler, service CRUDService[C, U, R], singular, plural string) *CRUDHandler[C, U, R] {
	return &CRUDHandler[C, U, R]{
		BaseHandler: base,
		Service:     service,
		singular:    singular,
		plural:      plural,
	}
}

func (h *CRUDHandler[C, U, R]) notFound(w http.ResponseWriter) {
	h.WriteError(w, http.StatusNotFound, h.singular+" not found")
}

func (h *CRUDHandler[C, U, R]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.Log(r).Error("List: failed to get "+h.plural, "error", err)
		h.WriteInternalError(w)
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}

func (h *CRUDHandler[C, U, R]) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(r)
	if !ok {
		h.notFound(w)
		return
	}

	item, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		h.Log(r).Error("GetByID: failed to get "+h.singular, "error", err, "id", id)
		h.WriteInternalError(w)
		return
	}
	if item == nil {
		h.notFound(w)
		return
	}

	h.WriteJSON(w, http.StatusOK, item)
}

func (h *CRUDHandler[C, U, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if appErr := h.DecodeJSON(r, &req); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	if appErr := req.Validate(); appErr != nil {
		h.Log(r).Warn("Create: invalid "+h.singular, "error", appErr.GetDetailedMessage())
		h.WriteAppError(w, appErr)
		return
	}

	id, err := h.Service.Create(r.Context(), req)
	if err != nil {
		h.Log(r).Error("Create: failed to add "+h.singular, "error", err)
		h.WriteInternalError(w)
		return
	}

	h.WriteJSON(w, http.StatusOK, id)
}

func (h *CRUDHandler[C, U, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(r)
	if !ok {
		h.notFound(w)
		return
	}

	var req U
	if appErr := h.DecodeJSON(r, &req); appErr != nil {
		h.WriteAppError(w, appErr)
		return
	}
	if appErr := req.Validate(); appErr != nil {
		h.Log(r).Warn("Update: invalid "+h.singular, "error", appErr.GetDetailedMessage(), "id", id)
		h.WriteAppError(w, appErr)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, req)
	if err != nil {
		h.Log(r).Error("Update: failed to update "+h.singular, "error", err, "id", id)
		h.WriteInternalError(w)
		return
	}
	if !updated {
		h.notFound(w)
		return
	}

	h.WriteStatus(w, http.StatusOK)
}

func (h *CRUDHandler[C, U, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ParseID(r)
	if !ok {
		h.notFound(w)
		return
	}

	deleted, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.Log(r).Error("Delete: failed to delete "+h.singular, "error", err, "id", id)
		h.WriteInternalError(w)
		return
	}
	if !deleted {
		h.notFound(w)
		return
	}

	h.WriteStatus(w, http.StatusOK)
}

package transport

import (
	"net/http"

	"github.com/go-chi/chi"
)

// ResourceHandler is the five-endpoint surface every entity exposes.
type ResourceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// MountResource registers h under path:
//
//	GET    path        List
//	GET    path/{id}   GetByID
//	POST   path        Create
//	PUT    path/{id}   Update
//	DELETE path/{id}   Delete
func MountResource(router chi.Router, path string, h ResourceHandler) {
	router.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/"+IDPattern, h.GetByID)
		r.Put("/"+IDPattern, h.Update)
		r.Delete("/"+IDPattern, h.Delete)
	})
}

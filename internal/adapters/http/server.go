// Package http exposes a read-only JSON view of the space tree over HTTP.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/alcove/pkg/domain"
)

// Workspace defines the slice of the alcove facade the server reads from.
type Workspace interface {
	ShowTree(ctx context.Context, name string) (*domain.Space, error)
	ListItems(ctx context.Context, space string) ([]domain.Item, error)
}

// NewHandler creates the HTTP handler for the read API.
func NewHandler(ws Workspace) http.Handler {
	s := &server{ws: ws}
	r := chi.NewRouter()
	r.Get("/tree", s.getTree)
	r.Get("/spaces/{name}", s.getSpace)
	r.Get("/spaces/{name}/items", s.getItems)
	return r
}

type server struct {
	ws Workspace
}

func (s *server) getTree(w http.ResponseWriter, r *http.Request) {
	tree, err := s.ws.ShowTree(r.Context(), "")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, tree)
}

func (s *server) getSpace(w http.ResponseWriter, r *http.Request) {
	space, err := s.ws.ShowTree(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, space)
}

func (s *server) getItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.ws.ListItems(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, items)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSpaceNotFound), errors.Is(err, domain.ErrTreeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

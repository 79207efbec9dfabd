package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"payments_tracker/internal/ports"
	"payments_tracker/internal/store"
)

type Handlers struct {
	Store  *store.Store
	Backup ports.Uploader // nil when the mirror is disabled

	Logger *log.Logger
}

func New(st *store.Store, backup ports.Uploader) *Handlers {
	return &Handlers{
		Store:  st,
		Backup: backup,
		Logger: log.Default(),
	}
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"payments_tracker/internal/models"
)

type submitRequest struct {
	Client  string  `json:"client"`
	Service string  `json:"service"`
	Amount  float64 `json:"amount"`
}

// Submit validates and persists one payment. Validation problems come back
// as 422 with no state change; a failed rewrite comes back as 500 and is
// safe to retry.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "use POST"})
		return
	}

	var req submitRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		h.Logger.Printf("[SUBMIT][ERR] bad JSON: %v", err)
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return
	}

	if err := models.ValidatePayment(req.Client, req.Service, req.Amount); err != nil {
		h.JSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	table, err := h.Store.Append(req.Client, req.Service, req.Amount, time.Now())
	if err != nil {
		h.Logger.Printf("[SUBMIT][ERR] write failed: %v", err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save the record, please retry: " + err.Error()})
		return
	}

	if h.Backup != nil {
		path := h.Store.Path
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := h.Backup.Upload(ctx, path); err != nil {
				h.Logger.Printf("[BACKUP][ERR] workbook mirror failed: %v", err)
			}
		}()
	}

	h.JSON(w, http.StatusCreated, map[string]any{"status": "saved", "rows": len(table)})
}

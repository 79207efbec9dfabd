package handlers

import (
	"context"
	"net/http"
	"time"
)

type healthResp struct {
	OK     bool     `json:"ok"`
	Rows   int      `json:"rows"`
	Errors []string `json:"errors,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []string

	if h.Store == nil {
		errs = append(errs, "store not initialized")
	}

	if h.Backup != nil {
		if err := h.Backup.Check(ctx); err != nil {
			errs = append(errs, "backup check failed: "+err.Error())
		}
	}

	resp := healthResp{OK: len(errs) == 0}
	if h.Store != nil {
		resp.Rows = len(h.Store.Load())
	}
	code := http.StatusOK
	if len(errs) > 0 {
		resp.Errors = errs
		code = http.StatusInternalServerError
	}
	h.JSON(w, code, resp)
}

package handlers

import (
	"net/http"
	"strconv"

	"payments_tracker/internal/export"
)

// Export serves the table as an xlsx download. variant=full sends every
// record; variant=filtered applies the same query-string filters as Report.
func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "use GET"})
		return
	}

	table := h.Store.Load()
	name := "payments_records.xlsx"

	variant := r.URL.Query().Get("variant")
	switch variant {
	case "", "full":
	case "filtered":
		filtered, _, _, err := h.filteredView(table, r)
		if err != nil {
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		table = filtered
		name = "payments_filtered.xlsx"
	default:
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "variant must be full or filtered"})
		return
	}

	b, err := export.Bytes(table)
	if err != nil {
		h.Logger.Printf("[EXPORT][ERR] variant=%q: %v", variant, err)
		h.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	_, _ = w.Write(b)
}

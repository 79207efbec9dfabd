package handlers

import (
	"net/http"
	"time"

	"payments_tracker/internal/models"
	"payments_tracker/internal/report"
	"payments_tracker/internal/store"
	"payments_tracker/internal/utils"
)

const dateParam = "2006-01-02"

type recordJSON struct {
	Timestamp string   `json:"timestamp,omitempty"`
	Client    string   `json:"client"`
	Service   string   `json:"service"`
	Amount    *float64 `json:"amount"`
	AmountUSD string   `json:"amount_usd"`
}

type kpiJSON struct {
	Total                float64 `json:"total"`
	TotalUSD             string  `json:"total_usd"`
	Count                int     `json:"count"`
	Average              float64 `json:"average"`
	AverageUSD           string  `json:"average_usd"`
	CurrentMonth         string  `json:"current_month"`
	CurrentMonthTotal    float64 `json:"current_month_total"`
	CurrentMonthTotalUSD string  `json:"current_month_total_usd"`
}

type reportResponse struct {
	From      string              `json:"from"`
	To        string              `json:"to"`
	KPIs      kpiJSON             `json:"kpis"`
	Records   []recordJSON        `json:"records"`
	ByClient  []report.GroupTotal `json:"by_client"`
	ByService []report.GroupTotal `json:"by_service"`
	Monthly   []report.MonthTotal `json:"monthly"`
	Clients   []string            `json:"clients"`
	Services  []string            `json:"services"`
}

// Report filters the table by the requested period and client/service
// selections and returns the KPIs, grouped sums and the monthly series.
// Monthly and current-month figures cover the whole table, not the filter.
func (h *Handlers) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.JSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "use GET"})
		return
	}

	table := h.Store.Load()

	filtered, from, to, err := h.filteredView(table, r)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	now := time.Now()
	avg := report.Average(filtered)
	total := report.Total(filtered)
	cmTotal := report.CurrentMonthTotal(table, now)

	resp := reportResponse{
		From: from.Format(dateParam),
		To:   to.Format(dateParam),
		KPIs: kpiJSON{
			Total:                total,
			TotalUSD:             utils.FormatUSD(&total),
			Count:                report.Count(filtered),
			Average:              avg,
			AverageUSD:           utils.FormatUSD(&avg),
			CurrentMonth:         now.Format("2006-01"),
			CurrentMonthTotal:    cmTotal,
			CurrentMonthTotalUSD: utils.FormatUSD(&cmTotal),
		},
		Records:   toJSON(filtered),
		ByClient:  report.GroupSum(filtered, report.ByClient),
		ByService: report.GroupSum(filtered, report.ByService),
		Monthly:   report.MonthlySum(table),
		Clients:   report.Options(table, report.ByClient),
		Services:  report.Options(table, report.ByService),
	}

	h.JSON(w, http.StatusOK, resp)
}

// filteredView applies the query-string filters; absent bounds default to
// the table's first and last record dates, like the original date picker.
func (h *Handlers) filteredView(table models.Table, r *http.Request) (models.Table, time.Time, time.Time, error) {
	q := r.URL.Query()

	from, to, ok := report.DateSpan(table)
	if !ok {
		now := time.Now()
		from, to = now, now
	}

	if v := q.Get("from"); v != "" {
		t, err := time.ParseInLocation(dateParam, v, time.Local)
		if err != nil {
			return nil, from, to, errBadDate("from", v)
		}
		from = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.ParseInLocation(dateParam, v, time.Local)
		if err != nil {
			return nil, from, to, errBadDate("to", v)
		}
		to = t
	}

	filtered := report.Filter(table, from, to, q["client"], q["service"])
	return filtered, from, to, nil
}

func toJSON(t models.Table) []recordJSON {
	out := make([]recordJSON, 0, len(t))
	for _, rec := range t {
		j := recordJSON{
			Client:    rec.Client,
			Service:   rec.Service,
			Amount:    rec.Amount,
			AmountUSD: utils.FormatUSD(rec.Amount),
		}
		if rec.Timestamp != nil {
			j.Timestamp = rec.Timestamp.Format(store.TimeLayout)
		}
		out = append(out, j)
	}
	return out
}

type badDateError struct{ param, value string }

func (e badDateError) Error() string {
	return e.param + " must be YYYY-MM-DD, got " + e.value
}

func errBadDate(param, value string) error { return badDateError{param, value} }

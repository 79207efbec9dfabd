package report

import (
	"sort"
	"time"

	"payments_tracker/internal/models"
)

// GroupKey selects the column a grouped sum buckets by.
type GroupKey string

const (
	ByClient  GroupKey = "client"
	ByService GroupKey = "service"
)

type GroupTotal struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// Total sums the amounts of all records; records with a missing amount are
// skipped, not treated as zero.
func Total(t models.Table) float64 {
	var sum float64
	for _, rec := range t {
		if rec.Amount != nil {
			sum += *rec.Amount
		}
	}
	return sum
}

// Count is the number of records, missing amounts included.
func Count(t models.Table) int { return len(t) }

// Average is the mean over records with a present amount, and 0 when there
// are none.
func Average(t models.Table) float64 {
	var sum float64
	var n int
	for _, rec := range t {
		if rec.Amount != nil {
			sum += *rec.Amount
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// GroupSum buckets amounts by client or service, sorted descending by total.
// Records with an empty key or missing amount are excluded.
func GroupSum(t models.Table, key GroupKey) []GroupTotal {
	sums := make(map[string]float64)
	order := make([]string, 0)
	for _, rec := range t {
		k := rec.Client
		if key == ByService {
			k = rec.Service
		}
		if k == "" || rec.Amount == nil {
			continue
		}
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += *rec.Amount
	}

	out := make([]GroupTotal, 0, len(order))
	for _, k := range order {
		out = append(out, GroupTotal{Key: k, Total: sums[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// MonthlySum buckets amounts by "YYYY-MM", ascending. Callers pass the
// unfiltered table; this series is a calendar-wide view.
func MonthlySum(t models.Table) []MonthTotal {
	sums := make(map[string]float64)
	for _, rec := range t {
		ym := rec.YearMonth()
		if ym == "" || rec.Amount == nil {
			continue
		}
		sums[ym] += *rec.Amount
	}

	out := make([]MonthTotal, 0, len(sums))
	for ym, total := range sums {
		out = append(out, MonthTotal{Month: ym, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// CurrentMonthTotal sums the amounts of records falling in today's calendar
// month, independent of any active filter.
func CurrentMonthTotal(t models.Table, today time.Time) float64 {
	ym := today.Format("2006-01")
	var sum float64
	for _, rec := range t {
		if rec.YearMonth() == ym && rec.Amount != nil {
			sum += *rec.Amount
		}
	}
	return sum
}

// Options returns the distinct non-empty values of the given column, sorted,
// for the report's client/service pickers.
func Options(t models.Table, key GroupKey) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, rec := range t {
		k := rec.Client
		if key == ByService {
			k = rec.Service
		}
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

package report

import (
	"time"

	"payments_tracker/internal/models"
)

// Filter returns the records whose calendar date falls inside [from, to]
// (both inclusive) and whose client/service appears in the given lists.
// Empty or nil lists mean no restriction. Records without a parseable
// timestamp never match a date range. Order is preserved.
func Filter(t models.Table, from, to time.Time, clients, services []string) models.Table {
	clientSet := toSet(clients)
	serviceSet := toSet(services)
	lo, hi := dateOnly(from), dateOnly(to)

	out := make(models.Table, 0, len(t))
	for _, rec := range t {
		d := rec.Date()
		if d == nil || d.Before(lo) || d.After(hi) {
			continue
		}
		if len(clientSet) > 0 && !clientSet[rec.Client] {
			continue
		}
		if len(serviceSet) > 0 && !serviceSet[rec.Service] {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// DateSpan returns the earliest and latest calendar dates in the table,
// backing the default report period. ok is false for a table with no
// parseable timestamps.
func DateSpan(t models.Table) (min, max time.Time, ok bool) {
	for _, rec := range t {
		d := rec.Date()
		if d == nil {
			continue
		}
		if !ok || d.Before(min) {
			min = *d
		}
		if !ok || d.After(max) {
			max = *d
		}
		ok = true
	}
	return min, max, ok
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// toSet drops empty values so an empty selection means "match all".
func toSet(vals []string) map[string]bool {
	var set map[string]bool
	for _, v := range vals {
		if v == "" {
			continue
		}
		if set == nil {
			set = make(map[string]bool, len(vals))
		}
		set[v] = true
	}
	return set
}

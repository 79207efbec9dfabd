package store

import (
	"strconv"
	"strings"
	"time"
)

func trim(s string) string { return strings.TrimSpace(s) }

// parseTimeLoose tries the layouts the workbook may contain, including what
// spreadsheet editors leave behind after a manual edit. Nil on failure.
func parseTimeLoose(s string) *time.Time {
	s = trim(s)
	if s == "" {
		return nil
	}
	layouts := []string{
		TimeLayout,
		time.RFC3339,
		"2006-01-02",
		"2006/01/02 15:04:05",
		"2006/01/02",
		"01-02-06 15:04",
		"1/2/06 15:04",
	}
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// parseAmount coerces a cell to a number, tolerating currency symbols and
// thousand separators. Nil on failure.
func parseAmount(s string) *float64 {
	s = trim(s)
	if s == "" {
		return nil
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

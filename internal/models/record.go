package models

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyClient    = errors.New("client is required")
	ErrEmptyService   = errors.New("service is required")
	ErrNegativeAmount = errors.New("amount must be zero or positive")
)

// Record is one persisted payment entry. Timestamp and Amount are pointers
// because the store coerces unparseable cells to nil instead of failing.
type Record struct {
	Timestamp *time.Time
	Client    string
	Service   string
	Amount    *float64
}

// YearMonth returns the "YYYY-MM" bucket of the record, or "" when the
// timestamp is missing.
func (r Record) YearMonth() string {
	if r.Timestamp == nil {
		return ""
	}
	return r.Timestamp.Format("2006-01")
}

// Date returns the calendar date of the record with the time-of-day zeroed
// out, or nil when the timestamp is missing.
func (r Record) Date() *time.Time {
	if r.Timestamp == nil {
		return nil
	}
	t := r.Timestamp
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &d
}

// Table is an ordered collection of records; insertion order is append order.
type Table []Record

// ValidatePayment checks submission inputs before they reach the store.
// The store itself does not re-check; callers own this precondition.
func ValidatePayment(client, service string, amount float64) error {
	var errs []error
	if strings.TrimSpace(client) == "" {
		errs = append(errs, ErrEmptyClient)
	}
	if strings.TrimSpace(service) == "" {
		errs = append(errs, ErrEmptyService)
	}
	if amount < 0 {
		errs = append(errs, ErrNegativeAmount)
	}
	return errors.Join(errs...)
}

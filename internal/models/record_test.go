package models

import (
	"errors"
	"testing"
	"time"
)

func TestValidatePayment(t *testing.T) {
	if err := ValidatePayment("Acme", "Consulting", 0); err != nil {
		t.Fatalf("zero amount is valid: %v", err)
	}
	if err := ValidatePayment("  ", "Consulting", 10); !errors.Is(err, ErrEmptyClient) {
		t.Fatalf("expected ErrEmptyClient, got %v", err)
	}
	if err := ValidatePayment("Acme", "\t", 10); !errors.Is(err, ErrEmptyService) {
		t.Fatalf("expected ErrEmptyService, got %v", err)
	}
	if err := ValidatePayment("Acme", "Consulting", -0.01); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}

	err := ValidatePayment("", "", -1)
	for _, want := range []error{ErrEmptyClient, ErrEmptyService, ErrNegativeAmount} {
		if !errors.Is(err, want) {
			t.Fatalf("joined error missing %v: %v", want, err)
		}
	}
}

func TestDerivedFields(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 59, 59, 0, time.Local)
	r := Record{Timestamp: &ts}

	if got := r.YearMonth(); got != "2024-03" {
		t.Fatalf("YearMonth = %q, want 2024-03", got)
	}
	d := r.Date()
	if d == nil || d.Hour() != 0 || d.Day() != 15 {
		t.Fatalf("Date = %v, want midnight of the 15th", d)
	}

	var empty Record
	if empty.YearMonth() != "" || empty.Date() != nil {
		t.Fatalf("derived fields of a timestampless record must be empty")
	}
}

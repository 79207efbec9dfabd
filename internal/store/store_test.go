package store

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "payments_records.xlsx"))
}

func TestLoadMissingFileReturnsEmptyTable(t *testing.T) {
	s := tempStore(t)
	table := s.Load()
	if len(table) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(table))
	}
}

func TestAppendThenLoadContainsTrimmedRecord(t *testing.T) {
	s := tempStore(t)
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)

	if _, err := s.Append("  Maria Silva ", "\tSite maintenance  ", 120.50, at); err != nil {
		t.Fatalf("append: %v", err)
	}

	table := s.Load()
	if len(table) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table))
	}
	rec := table[0]
	if rec.Client != "Maria Silva" {
		t.Fatalf("client not trimmed: %q", rec.Client)
	}
	if rec.Service != "Site maintenance" {
		t.Fatalf("service not trimmed: %q", rec.Service)
	}
	if rec.Amount == nil || *rec.Amount != 120.50 {
		t.Fatalf("amount mismatch: %v", rec.Amount)
	}
	if rec.Timestamp == nil || !rec.Timestamp.Equal(at) {
		t.Fatalf("timestamp mismatch: %v", rec.Timestamp)
	}
}

func TestAppendInvalidatesCache(t *testing.T) {
	s := tempStore(t)
	at := time.Now()

	if _, err := s.Append("Acme", "Consulting", 100, at); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got := len(s.Load()); got != 1 {
		t.Fatalf("expected 1 row after first append, got %d", got)
	}

	// second append must show up on the next Load, not a stale cached copy
	if _, err := s.Append("Acme", "Support", 50, at); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got := len(s.Load()); got != 2 {
		t.Fatalf("stale read after append: got %d rows, want 2", got)
	}
}

func TestAppendReReadsBackingFileNotCache(t *testing.T) {
	s := tempStore(t)
	at := time.Now()

	if _, err := s.Append("Acme", "Consulting", 100, at); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Load() // warm the cache

	// simulate an external writer replacing the workbook
	other := New(s.Path)
	if _, err := other.Append("Beta", "Audit", 75, at); err != nil {
		t.Fatalf("external append: %v", err)
	}

	table, err := s.Append("Acme", "Support", 50, at)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(table) != 3 {
		t.Fatalf("external edit lost: got %d rows, want 3", len(table))
	}
}

func TestCorruptWorkbookDegradesToEmpty(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path, []byte("this is not a workbook"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var buf strings.Builder
	s.Logger = log.New(&buf, "", 0)

	table := s.Load()
	if len(table) != 0 {
		t.Fatalf("expected degraded empty table, got %d rows", len(table))
	}
	if !strings.Contains(buf.String(), "[STORE][WARN]") {
		t.Fatalf("expected a read warning, log was: %q", buf.String())
	}

	// a save after the degraded read replaces the broken file
	if _, err := s.Append("Acme", "Consulting", 10, time.Now()); err != nil {
		t.Fatalf("append over corrupt file: %v", err)
	}
	if got := len(s.Load()); got != 1 {
		t.Fatalf("expected fresh table with 1 row, got %d", got)
	}
}

func TestWriteFailurePropagatesAndLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "payments_records.xlsx"))

	// a directory at the workbook path makes the rename fail
	if err := os.Mkdir(s.Path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, err := s.Append("Acme", "Support", 20, time.Now()); err == nil {
		t.Fatalf("expected write failure to propagate")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "payments_records.xlsx" {
			t.Fatalf("failed write left %q behind", e.Name())
		}
	}
}

func TestParseTimeLoose(t *testing.T) {
	if got := parseTimeLoose("2024-03-15 10:30:00"); got == nil || got.Hour() != 10 {
		t.Fatalf("canonical layout not parsed: %v", got)
	}
	if got := parseTimeLoose("2024-03-15"); got == nil || got.Day() != 15 {
		t.Fatalf("date-only layout not parsed: %v", got)
	}
	if got := parseTimeLoose("not a date"); got != nil {
		t.Fatalf("expected nil for garbage, got %v", got)
	}
	if got := parseTimeLoose(""); got != nil {
		t.Fatalf("expected nil for empty, got %v", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"1,234.56", 1234.56, true},
		{"$99.90", 99.90, true},
		{"  42 ", 42, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got := parseAmount(c.in)
		if c.ok && (got == nil || *got != c.want) {
			t.Fatalf("parseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
		if !c.ok && got != nil {
			t.Fatalf("parseAmount(%q) = %v, want nil", c.in, *got)
		}
	}
}

package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"payments_tracker/internal/models"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const (
	// Sheet is the single worksheet holding the records.
	Sheet = "Records"

	// TimeLayout is how timestamps are written to the workbook.
	TimeLayout = "2006-01-02 15:04:05"
)

// Columns is the canonical persisted schema, in order. Unknown columns on
// load are ignored; missing ones are backfilled empty.
var Columns = []string{"Timestamp", "Client", "Service", "Amount Paid (USD)"}

// Store owns the backing workbook and the memoized load result. Reads never
// fail the caller: a missing or corrupt workbook degrades to an empty table
// with a logged warning. Writes are whole-file rewrites and are the only
// fatal failure class.
type Store struct {
	Path   string
	Logger *log.Logger

	mu     sync.Mutex
	cached models.Table
	valid  bool
}

func New(path string) *Store {
	return &Store{Path: path, Logger: log.Default()}
}

// Load returns the current table, serving the memoized copy when valid.
func (s *Store) Load() models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid {
		return s.cached
	}
	s.cached = s.read()
	s.valid = true
	return s.cached
}

// Clear drops the memoized table so the next Load re-reads the workbook.
func (s *Store) Clear() {
	s.mu.Lock()
	s.valid = false
	s.cached = nil
	s.mu.Unlock()
}

// Append trims the inputs, re-reads the workbook (not the cache, so external
// edits survive), concatenates one record and rewrites the whole file
// atomically. Validation of client/service/amount belongs to the caller.
func (s *Store) Append(client, service string, amount float64, at time.Time) (models.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table := s.read()
	rec := models.Record{
		Timestamp: &at,
		Client:    trim(client),
		Service:   trim(service),
		Amount:    &amount,
	}
	table = append(table, rec)

	if err := s.write(table); err != nil {
		return nil, fmt.Errorf("append payment: %w", err)
	}

	// invalidate before returning so the next Load sees the new record
	s.valid = false
	s.cached = nil

	s.Logger.Printf("[STORE][OK] appended client=%q amount=%.2f rows=%d", rec.Client, amount, len(table))
	return table, nil
}

// read loads and normalizes the workbook. Any read problem is logged and
// degrades to an empty table; a later save overwrites the broken file.
func (s *Store) read() models.Table {
	if _, err := os.Stat(s.Path); err != nil {
		return models.Table{}
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		s.Logger.Printf("[STORE][WARN] cannot read workbook %q: %v — a fresh one will be created on save", s.Path, err)
		return models.Table{}
	}
	defer f.Close()

	rows, err := f.GetRows(Sheet)
	if err != nil {
		s.Logger.Printf("[STORE][WARN] cannot read sheet %q: %v — a fresh one will be created on save", Sheet, err)
		return models.Table{}
	}
	if len(rows) == 0 {
		return models.Table{}
	}

	// map canonical columns to their position in this file; -1 backfills empty
	idx := make([]int, len(Columns))
	for i, want := range Columns {
		idx[i] = -1
		for j, got := range rows[0] {
			if trim(got) == want {
				idx[i] = j
				break
			}
		}
	}

	table := make(models.Table, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cell := func(col int) string {
			j := idx[col]
			if j < 0 || j >= len(row) {
				return ""
			}
			return trim(row[j])
		}

		ts, client, service, amt := cell(0), cell(1), cell(2), cell(3)
		if ts == "" && client == "" && service == "" && amt == "" {
			continue
		}

		table = append(table, models.Record{
			Timestamp: parseTimeLoose(ts),
			Client:    client,
			Service:   service,
			Amount:    parseAmount(amt),
		})
	}
	return table
}

// NewWorkbook builds an xlsx file holding the canonical four columns of the
// table. Shared by the store's rewrite and the export adapter so both sides
// of the round-trip use the same cell conventions.
func NewWorkbook(t models.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		f.Close()
		return nil, err
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for i, rec := range t {
		var ts, amt any
		if rec.Timestamp != nil {
			ts = rec.Timestamp.Format(TimeLayout)
		}
		if rec.Amount != nil {
			amt = *rec.Amount
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(Sheet, cell, &[]any{ts, rec.Client, rec.Service, amt}); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// write rewrites the entire table to a uuid-named temp file next to the
// workbook and renames it into place, so a failed write leaves the previous
// file untouched.
func (s *Store) write(t models.Table) error {
	f, err := NewWorkbook(t)
	if err != nil {
		return err
	}
	defer f.Close()

	tmp := filepath.Join(filepath.Dir(s.Path), "."+uuid.NewString()+".tmp.xlsx")
	if err := f.SaveAs(tmp); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

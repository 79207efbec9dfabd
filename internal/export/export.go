// Package export serializes a table back to the workbook format so any view
// (full or filtered) can be offered as a download that the store can reload.
package export

import (
	"payments_tracker/internal/models"
	"payments_tracker/internal/store"
)

// ContentType is the xlsx MIME type sent with downloads.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Bytes encodes the table as an xlsx workbook with the canonical four
// columns, same sheet name and cell conventions as the store, so reloading
// the output reproduces the records.
func Bytes(t models.Table) ([]byte, error) {
	f, err := store.NewWorkbook(t)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

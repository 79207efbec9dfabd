package ports

import "context"

// Uploader mirrors the workbook to an external object store after a
// successful write. Implementations must treat upload failure as
// non-fatal; the workbook on disk stays the source of truth.
type Uploader interface {
	Upload(ctx context.Context, path string) error
	Check(ctx context.Context) error
}

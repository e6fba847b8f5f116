// Package dataset acquires the tabular data that determines how many items
// exist and what each one displays. The engine itself only consumes the row
// count and one opaque payload per row; everything here stays upstream of
// the core, and an access-denied failure means the core is never invoked.
package dataset

import "errors"

var (
	// ErrAccessDenied indicates the remote source rejected our credentials.
	ErrAccessDenied = errors.New("dataset: access denied")

	// ErrUnsupportedFormat indicates a file extension or content type with
	// no registered decoder.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")
)

// Row is one record of named fields.
type Row map[string]string

// Source is a loaded dataset: an ordered field list plus the rows in their
// original order. Row order fixes item index order for the lifetime of a
// load.
type Source struct {
	Fields []string
	Rows   []Row
}

// Count returns the number of rows, which is the item count N.
func (s *Source) Count() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// Payloads returns one opaque payload per row, in row order. The engine
// hands these to items without interpreting them.
func (s *Source) Payloads() []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r
	}
	return out
}

// Field returns the named field of row i, or "" when absent.
func (s *Source) Field(i int, name string) string {
	if s == nil || i < 0 || i >= len(s.Rows) {
		return ""
	}
	return s.Rows[i][name]
}

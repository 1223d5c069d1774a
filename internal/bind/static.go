package bind

import (
	"errors"
	"fmt"
)

// StaticRows is an in-memory Cursor.
type StaticRows struct {
	labels []string
	rows   [][]any
	pos    int
	closed bool

	// ErrAfter makes Err report an error once this many rows were read.
	// Zero disables it.
	ErrAfter int
	Error    error
	// CloseError is returned by Close.
	CloseError error
}

// NewStaticRows returns a cursor over rows labelled by labels.
func NewStaticRows(labels []string, rows ...[]any) *StaticRows {
	return &StaticRows{labels: labels, rows: rows}
}

// Columns returns the labels.
func (r *StaticRows) Columns() ([]string, error) {
	if r.closed {
		return nil, errors.New("rows are closed")
	}
	return r.labels, nil
}

// Next advances to the next row.
func (r *StaticRows) Next() bool {
	if r.closed || r.pos >= len(r.rows) {
		return false
	}
	if r.ErrAfter > 0 && r.pos >= r.ErrAfter {
		return false
	}
	r.pos++
	return true
}

// Scan copies the current row into dest, which must hold *any values.
func (r *StaticRows) Scan(dest ...any) error {
	if r.closed {
		return errors.New("rows are closed")
	}
	if r.pos == 0 {
		return errors.New("scan called without calling Next")
	}
	row := r.rows[r.pos-1]
	if len(dest) != len(r.labels) {
		return fmt.Errorf("expected %d destination arguments in Scan, not %d", len(r.labels), len(dest))
	}
	for i, d := range dest {
		p, ok := d.(*any)
		if !ok {
			return fmt.Errorf("unsupported scan destination %T", d)
		}
		if i < len(row) {
			*p = row[i]
		} else {
			*p = nil
		}
	}
	return nil
}

// Err reports the configured read error once ErrAfter rows were read.
func (r *StaticRows) Err() error {
	if r.ErrAfter > 0 && r.pos >= r.ErrAfter {
		return r.Error
	}
	return nil
}

// Close releases the cursor.
func (r *StaticRows) Close() error {
	r.closed = true
	return r.CloseError
}

// Closed reports whether Close was called.
func (r *StaticRows) Closed() bool {
	return r.closed
}

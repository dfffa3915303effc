// Package table holds the editable job rows and the single-active-edit session
// that is the only path for changing a cell.
package table

import (
	"github.com/google/uuid"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

// Row is one table entry. ID stays valid for the lifetime of the table.
type Row struct {
	ID     uuid.UUID
	Values model.RawRow
}

// RowStore keeps rows in insertion order.
type RowStore struct {
	rows []Row
}

// NewRowStore returns an empty store.
func NewRowStore() *RowStore {
	return &RowStore{}
}

// Append adds a row with the given values and returns its handle.
func (s *RowStore) Append(values model.RawRow) uuid.UUID {
	id := uuid.New()
	s.rows = append(s.rows, Row{ID: id, Values: values})
	return id
}

// AppendBlank adds an empty placeholder row.
func (s *RowStore) AppendBlank() uuid.UUID {
	return s.Append(model.RawRow{})
}

// Remove deletes the rows with the given handles and returns how many were removed.
// Unknown handles are ignored.
func (s *RowStore) Remove(ids ...uuid.UUID) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := s.rows[:0]
	for _, r := range s.rows {
		if _, ok := drop[r.ID]; ok {
			continue
		}
		kept = append(kept, r)
	}
	removed := len(s.rows) - len(kept)
	for i := len(kept); i < len(s.rows); i++ {
		s.rows[i] = Row{}
	}
	s.rows = kept
	return removed
}

// Row returns the row with the given handle.
func (s *RowStore) Row(id uuid.UUID) (Row, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Row{}, false
	}
	return s.rows[i], true
}

// Position returns the zero-based position of the row, or -1.
func (s *RowStore) Position(id uuid.UUID) int {
	return s.indexOf(id)
}

// Rows returns a copy of all rows in order.
func (s *RowStore) Rows() []Row {
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Len returns the number of rows, blank placeholders included.
func (s *RowStore) Len() int {
	return len(s.rows)
}

// Snapshot returns the raw values of every row in order.
func (s *RowStore) Snapshot() []model.RawRow {
	out := make([]model.RawRow, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Values
	}
	return out
}

func (s *RowStore) reset() {
	s.rows = nil
}

// setCell is reachable only through Session so that every write is a committed edit.
func (s *RowStore) setCell(id uuid.UUID, field model.Field, value string) error {
	if !field.Valid() {
		return apperrors.NotFoundf("column %d not found", int(field))
	}
	i := s.indexOf(id)
	if i < 0 {
		return apperrors.NotFoundf("row %s not found", id)
	}
	s.rows[i].Values[field] = value
	return nil
}

func (s *RowStore) indexOf(id uuid.UUID) int {
	for i, r := range s.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}

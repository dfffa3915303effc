package table

import (
	"github.com/google/uuid"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
)

// Table owns the rows and the one edit session allowed to change them.
// Structural operations commit any in-flight edit before they run.
type Table struct {
	store   *RowStore
	session *Session
}

// New returns an empty table. source feeds the coin type-ahead editors and
// comparisons the operator choice editor.
func New(source CandidateSource, comparisons []string) *Table {
	if source == nil {
		panic("table: candidate source is required")
	}
	store := NewRowStore()
	return &Table{store: store, session: newSession(store, source, comparisons)}
}

// Session returns the table's edit session.
func (t *Table) Session() *Session {
	return t.session
}

// Rows returns a copy of the rows in order.
func (t *Table) Rows() []Row {
	return t.store.Rows()
}

// Row returns a single row.
func (t *Table) Row(id uuid.UUID) (Row, bool) {
	return t.store.Row(id)
}

// Position returns the zero-based position of a row, or -1.
func (t *Table) Position(id uuid.UUID) int {
	return t.store.Position(id)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.store.Len()
}

// Reload discards every row and any open editor, then loads rows in order.
// source and comparisons replace the editor choices.
func (t *Table) Reload(source CandidateSource, comparisons []string, rows []model.RawRow) []uuid.UUID {
	if source == nil {
		panic("table: candidate source is required")
	}
	t.session.Cancel()
	t.session.configure(source, comparisons)
	t.store.reset()
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, t.store.Append(r))
	}
	return ids
}

// AddRow commits the active edit and appends a blank row.
func (t *Table) AddRow() (uuid.UUID, error) {
	if err := t.session.Commit(); err != nil {
		return uuid.Nil, err
	}
	return t.store.AppendBlank(), nil
}

// DeleteRows commits the active edit and removes the given rows.
func (t *Table) DeleteRows(ids ...uuid.UUID) (int, error) {
	if err := t.session.Commit(); err != nil {
		return 0, err
	}
	return t.store.Remove(ids...), nil
}

// Snapshot commits the active edit and returns every row's raw values in order.
func (t *Table) Snapshot() ([]model.RawRow, error) {
	if err := t.session.Commit(); err != nil {
		return nil, err
	}
	return t.store.Snapshot(), nil
}

package table

import (
	"github.com/google/uuid"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

// State is the edit session state.
type State int

const (
	// StateIdle means no cell is being edited.
	StateIdle State = iota
	// StateEditing means exactly one cell has an open editor.
	StateEditing
)

func (s State) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "idle"
}

// Trigger is a UI event that ends the active edit by committing it.
type Trigger int

const (
	TriggerFocusLost Trigger = iota
	TriggerConfirm
	TriggerSelectionChanged
	TriggerPointerOutside
)

// Editing describes the cell under edit.
type Editing struct {
	RowID uuid.UUID
	Field model.Field
	Kind  model.EditorKind
}

type activeEdit struct {
	at     Editing
	editor Editor
}

// Session enforces a single active edit over a RowStore.
//
//	Idle ──Begin──► Editing ──Commit/Handle──► Idle
//	                   │  └──Begin (commits first)──► Editing
//	                   └──Cancel──► Idle
type Session struct {
	store       *RowStore
	source      CandidateSource
	comparisons []string
	active      *activeEdit
}

func newSession(store *RowStore, source CandidateSource, comparisons []string) *Session {
	s := &Session{store: store}
	s.configure(source, comparisons)
	return s
}

func (s *Session) configure(source CandidateSource, comparisons []string) {
	s.source = source
	s.comparisons = make([]string, len(comparisons))
	copy(s.comparisons, comparisons)
}

// State returns the current state.
func (s *Session) State() State {
	if s.active == nil {
		return StateIdle
	}
	return StateEditing
}

// Current returns the cell under edit, if any.
func (s *Session) Current() (Editing, bool) {
	if s.active == nil {
		return Editing{}, false
	}
	return s.active.at, true
}

// Editor returns the open editor, or nil when idle.
func (s *Session) Editor() Editor {
	if s.active == nil {
		return nil
	}
	return s.active.editor
}

// Begin opens an editor on the given cell. An edit already in flight is committed
// first with whatever value its editor shows. A bad target leaves the session unchanged.
func (s *Session) Begin(rowID uuid.UUID, field model.Field) (Editor, error) {
	if !field.Valid() {
		return nil, apperrors.NotFoundf("column %d not found", int(field))
	}
	if _, ok := s.store.Row(rowID); !ok {
		return nil, apperrors.NotFoundf("row %s not found", rowID)
	}

	if err := s.Commit(); err != nil {
		return nil, err
	}

	// The commit above cannot remove rows, so the target is still present.
	row, _ := s.store.Row(rowID)
	kind := field.Def().Editor
	ed := newEditor(kind, row.Values.Get(field), s.source, s.comparisons)
	s.active = &activeEdit{
		at:     Editing{RowID: rowID, Field: field, Kind: kind},
		editor: ed,
	}
	return ed, nil
}

// Commit writes the editor's visible value to the store and returns to Idle.
// Committing while idle is a no-op.
func (s *Session) Commit() error {
	if s.active == nil {
		return nil
	}
	a := s.active
	s.active = nil
	return s.store.setCell(a.at.RowID, a.at.Field, a.editor.Value())
}

// CommitValue sets the editor's value and commits it.
func (s *Session) CommitValue(value string) error {
	if s.active == nil {
		return apperrors.Conflict("no cell is being edited")
	}
	s.active.editor.SetValue(value)
	return s.Commit()
}

// Cancel discards the editor's value and returns to Idle without touching the store.
func (s *Session) Cancel() {
	s.active = nil
}

// Handle reacts to a UI trigger. Every trigger commits the active edit.
func (s *Session) Handle(trigger Trigger) error {
	switch trigger {
	case TriggerFocusLost, TriggerConfirm, TriggerSelectionChanged, TriggerPointerOutside:
		return s.Commit()
	default:
		return apperrors.Conflictf("unknown edit trigger %d", int(trigger))
	}
}

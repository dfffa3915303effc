package table

import (
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

// CandidateSource lists ticker displays matching a filter.
type CandidateSource interface {
	Candidates(filter string) []string
}

// Editor is the in-place editor open on the active cell. The concrete type is
// selected by the column's model.EditorKind.
type Editor interface {
	Kind() model.EditorKind
	// Value is the text currently visible in the editor; it is what a commit writes.
	Value() string
	SetValue(v string)
}

// TextEditor edits free text (email, values, counts).
type TextEditor struct {
	value string
}

func (e *TextEditor) Kind() model.EditorKind { return model.EditorFreeText }
func (e *TextEditor) Value() string          { return e.value }
func (e *TextEditor) SetValue(v string)      { e.value = v }

// ChoiceEditor picks from a short closed set.
type ChoiceEditor struct {
	value   string
	options []string
}

func (e *ChoiceEditor) Kind() model.EditorKind { return model.EditorFixedChoice }
func (e *ChoiceEditor) Value() string          { return e.value }
func (e *ChoiceEditor) SetValue(v string)      { e.value = v }

// Options returns the allowed values.
func (e *ChoiceEditor) Options() []string {
	out := make([]string, len(e.options))
	copy(out, e.options)
	return out
}

// Choose selects one of the options.
func (e *ChoiceEditor) Choose(option string) error {
	for _, o := range e.options {
		if o == option {
			e.value = option
			return nil
		}
	}
	return apperrors.NotFoundf("option %q not available", option)
}

// FilteredEditor is a type-ahead over the active ticker displays. Typing sets the
// filter and the visible text; choosing a candidate sets only the value.
type FilteredEditor struct {
	value      string
	filter     string
	source     CandidateSource
	candidates []string
}

func (e *FilteredEditor) Kind() model.EditorKind { return model.EditorFilteredChoice }
func (e *FilteredEditor) Value() string          { return e.value }
func (e *FilteredEditor) SetValue(v string)      { e.value = v }

// Filter returns the current filter text.
func (e *FilteredEditor) Filter() string { return e.filter }

// SetFilter replaces the filter text and recomputes the candidates.
func (e *FilteredEditor) SetFilter(f string) {
	e.filter = f
	e.value = f
	e.candidates = e.source.Candidates(f)
}

// Candidates returns the displays matching the current filter.
func (e *FilteredEditor) Candidates() []string {
	out := make([]string, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// Choose selects one of the current candidates. It does not commit.
func (e *FilteredEditor) Choose(candidate string) error {
	for _, c := range e.candidates {
		if c == candidate {
			e.value = candidate
			return nil
		}
	}
	return apperrors.NotFoundf("ticker %q is not a candidate", candidate)
}

func newEditor(kind model.EditorKind, initial string, source CandidateSource, options []string) Editor {
	switch kind {
	case model.EditorFixedChoice:
		opts := make([]string, len(options))
		copy(opts, options)
		return &ChoiceEditor{value: initial, options: opts}
	case model.EditorFilteredChoice:
		return &FilteredEditor{value: initial, source: source, candidates: source.Candidates("")}
	default:
		return &TextEditor{value: initial}
	}
}

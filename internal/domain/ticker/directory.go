// Package ticker resolves coin cells between persisted ticker ids and the
// "{id}|{symbol} - {name}" display strings shown while editing.
//
// Resolution is asymmetric: ResolveDisplay degrades to "" for unknown ids so a
// stale job can still be shown, while ResolveID fails so a stale job cannot be saved.
package ticker

import (
	"strings"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
	"golang.org/x/text/cases"
)

const displaySeparator = "|"

// Directory is an immutable id→display index over the active catalog entries.
type Directory struct {
	displays map[string]string
	order    []string // display strings in catalog order
	folded   []string // case-folded copies of order for filtering
	fold     cases.Caser
}

// New builds a Directory from catalog entries. Inactive entries are dropped and
// later duplicates of an id are ignored.
func New(entries []model.Ticker) *Directory {
	d := &Directory{
		displays: make(map[string]string, len(entries)),
		fold:     cases.Fold(),
	}
	for _, e := range entries {
		id := strings.TrimSpace(e.ID)
		if id == "" || !e.Active() {
			continue
		}
		if _, dup := d.displays[id]; dup {
			continue
		}
		e.ID = id
		disp := e.Display()
		d.displays[id] = disp
		d.order = append(d.order, disp)
		d.folded = append(d.folded, d.fold.String(disp))
	}
	return d
}

// Len returns the number of active tickers.
func (d *Directory) Len() int {
	return len(d.order)
}

// Has reports whether id is an active ticker.
func (d *Directory) Has(id string) bool {
	_, ok := d.displays[id]
	return ok
}

// ResolveID turns a cell value into a known ticker id. A purely numeric input is
// taken as an id; otherwise the numeric segment before "|" is used.
func (d *Directory) ResolveID(input string) (string, error) {
	input = strings.TrimSpace(input)
	candidate := input
	if !isDigits(candidate) {
		head, _, found := strings.Cut(input, displaySeparator)
		head = strings.TrimSpace(head)
		if !found || !isDigits(head) {
			return "", apperrors.NotFoundf("ticker %q not found", input)
		}
		candidate = head
	}
	if !d.Has(candidate) {
		return "", apperrors.NotFoundf("ticker %q not found", input)
	}
	return candidate, nil
}

// ResolveDisplay returns the display string for id, or "" when id is unknown.
func (d *Directory) ResolveDisplay(id string) string {
	return d.displays[strings.TrimSpace(id)]
}

// Displays returns every active display string in catalog order.
func (d *Directory) Displays() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Candidates returns the displays containing filter, compared case-insensitively.
// An empty filter returns every display.
func (d *Directory) Candidates(filter string) []string {
	if filter == "" {
		return d.Displays()
	}
	needle := d.fold.String(filter)
	out := make([]string, 0)
	for i, f := range d.folded {
		if strings.Contains(f, needle) {
			out = append(out, d.order[i])
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

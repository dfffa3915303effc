// Package data provides file-backed repositories for the job config, UI config and ticker catalog.
package data

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	jobsKey       = "jobs"
	defaultIndent = 4
)

// JobConfigRepo reads and writes the "jobs" array of the worker config file.
// Every other top-level key is carried through untouched.
type JobConfigRepo struct {
	path   string
	indent string
}

// NewJobConfigRepo creates a JobConfigRepo. indent is the number of spaces per
// nesting level in the written file; values below 1 use 4.
func NewJobConfigRepo(path string, indent int) *JobConfigRepo {
	if indent < 1 {
		indent = defaultIndent
	}
	return &JobConfigRepo{path: path, indent: strings.Repeat(" ", indent)}
}

// Path returns the job config location.
func (r *JobConfigRepo) Path() string {
	return r.path
}

// Load reads the file. It fails with a config load error when the file is missing,
// is not a JSON object, or has no "jobs" array.
func (r *JobConfigRepo) Load(ctx context.Context) (*model.JobDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(r.path)
	if err != nil {
		return nil, apperrors.ConfigLoad(r.path, err)
	}
	doc, err := parseJobDocument(b)
	if err != nil {
		return nil, apperrors.ConfigLoad(r.path, err)
	}
	return doc, nil
}

// Save replaces the "jobs" array of doc with jobs and overwrites the file.
// The write is a whole-file replacement, not an atomic rename.
func (r *JobConfigRepo) Save(ctx context.Context, doc *model.JobDocument, jobs []model.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc == nil {
		return apperrors.Internalf("save %s: no loaded document", r.path)
	}
	out, err := r.render(doc, jobs)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "encode %s", r.path)
	}
	if err := os.WriteFile(r.path, out, 0o644); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "write %s", r.path)
	}
	doc.Raw = out
	return nil
}

func (r *JobConfigRepo) render(doc *model.JobDocument, jobs []model.Job) ([]byte, error) {
	records := make([]jobRecord, 0, len(jobs))
	for _, j := range jobs {
		records = append(records, newJobRecord(j, doc.NumericCoinIDs))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}

	raw := make([]byte, len(doc.Raw))
	copy(raw, doc.Raw)
	patched, err := sjson.SetRawBytes(raw, jobsKey, bytes.TrimSpace(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	return pretty.PrettyOptions(patched, &pretty.Options{Indent: r.indent}), nil
}

// jobRecord fixes the key order of a persisted job.
type jobRecord struct {
	Email          string      `json:"email"`
	SourceCoin     any         `json:"source_coin"`
	TargetCoin     any         `json:"target_coin"`
	SourceValue    json.Number `json:"source_value"`
	TargetValue    json.Number `json:"target_value"`
	Comparison     string      `json:"comparison"`
	EmailSentCount int64       `json:"email_sent_count"`
}

func newJobRecord(j model.Job, numericIDs bool) jobRecord {
	return jobRecord{
		Email:          j.Email,
		SourceCoin:     coinValue(j.SourceCoin, numericIDs),
		TargetCoin:     coinValue(j.TargetCoin, numericIDs),
		SourceValue:    json.Number(decimalText(j.SourceValue)),
		TargetValue:    json.Number(decimalText(j.TargetValue)),
		Comparison:     j.Comparison,
		EmailSentCount: j.EmailSentCount,
	}
}

// decimalText keeps the scale the value was entered with, so "1.50" stays "1.50".
func decimalText(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.StringFixed(0)
}

func coinValue(id string, numeric bool) any {
	if numeric {
		return json.Number(id)
	}
	return id
}

func parseJobDocument(b []byte) (*model.JobDocument, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return nil, errors.New("top level is not an object")
	}
	jobs := root.Get(jobsKey)
	if !jobs.Exists() {
		return nil, errors.New(`missing "jobs"`)
	}
	if !jobs.IsArray() {
		return nil, errors.New(`"jobs" is not an array`)
	}

	doc := &model.JobDocument{Raw: b, Rows: make([]model.RawRow, 0)}
	var parseErr error
	jobs.ForEach(func(_, job gjson.Result) bool {
		if !job.IsObject() {
			parseErr = errors.New(`"jobs" entry is not an object`)
			return false
		}
		var row model.RawRow
		for _, col := range model.Columns {
			v := job.Get(col.Name)
			row[col.Field] = cellText(v)
			if col.Type == model.SemanticTicker && v.Type == gjson.Number {
				doc.NumericCoinIDs = true
			}
		}
		doc.Rows = append(doc.Rows, row)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return doc, nil
}

// cellText renders a JSON value as the text shown in a cell. Numbers keep their
// literal form so "1.50" is not rewritten on display.
func cellText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Null:
		return ""
	default:
		return v.Raw
	}
}

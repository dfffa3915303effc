// Package service provides the job editor service.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jxcryptonotify/job-editor/internal/core"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	"github.com/jxcryptonotify/job-editor/internal/domain/rules"
	"github.com/jxcryptonotify/job-editor/internal/domain/table"
	"github.com/jxcryptonotify/job-editor/internal/domain/ticker"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
	"golang.org/x/sync/errgroup"
)

// EditorServiceOptions groups dependencies for EditorService.
type EditorServiceOptions struct {
	Jobs    core.JobConfigRepository // Required: job config file
	Catalog core.CatalogRepository   // Required: ticker catalog
	UI      core.UIConfigRepository  // Required: comparison set and actions
	Logger  *slog.Logger             // Optional: structured logger
}

// EditorService loads the job config into an editable table and writes it back.
//
// Coin cells are held as display strings while editing and translated back to
// ticker ids on save. A save validates every non-blank row first and writes
// nothing if any row fails.
type EditorService struct {
	jobs    core.JobConfigRepository
	catalog core.CatalogRepository
	ui      core.UIConfigRepository
	logger  *slog.Logger

	dir    *ticker.Directory
	uiCfg  model.UIConfig
	engine *rules.Engine
	doc    *model.JobDocument
	table  *table.Table
}

// NewEditorService constructs an EditorService with an empty table.
// Call Load before editing.
func NewEditorService(opts EditorServiceOptions) (*EditorService, error) {
	if opts.Jobs == nil {
		return nil, errors.New("JobConfigRepository is required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("CatalogRepository is required")
	}
	if opts.UI == nil {
		return nil, errors.New("UIConfigRepository is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dir := ticker.New(nil)
	comparisons := model.UIConfig{}.Comparisons()
	return &EditorService{
		jobs:    opts.Jobs,
		catalog: opts.Catalog,
		ui:      opts.UI,
		logger:  logger.With("component", "editor_service"),
		dir:     dir,
		engine:  rules.NewEngine(dir, comparisons),
		table:   table.New(dir, comparisons),
	}, nil
}

// MustNewEditorService constructs an EditorService and panics on error.
func MustNewEditorService(opts EditorServiceOptions) *EditorService {
	svc, err := NewEditorService(opts)
	if err != nil {
		//nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
		panic(fmt.Sprintf("failed to create EditorService: %v", err))
	}
	return svc
}

// Load reads the UI config and the ticker catalog, then the job config, and
// replaces the table contents. On error the previous state is kept.
func (s *EditorService) Load(ctx context.Context) error {
	var (
		uiCfg   model.UIConfig
		entries []model.Ticker
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg, err := s.ui.Load(gctx)
		if err != nil {
			return fmt.Errorf("load ui config: %w", err)
		}
		uiCfg = cfg
		return nil
	})
	g.Go(func() error {
		list, err := s.catalog.Load(gctx)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		entries = list
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "editor load failed", "error", err)
		return err
	}

	dir := ticker.New(entries)
	doc, err := s.jobs.Load(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "editor load failed", "error", err)
		return fmt.Errorf("load jobs: %w", err)
	}

	comparisons := uiCfg.Comparisons()
	s.dir = dir
	s.uiCfg = uiCfg
	s.engine = rules.NewEngine(dir, comparisons)
	s.doc = doc
	s.table.Reload(dir, comparisons, displayRows(dir, doc.Rows))

	s.logger.InfoContext(ctx, "editor loaded",
		"tickers", dir.Len(),
		"jobs", len(doc.Rows),
		"comparisons", len(comparisons),
	)
	return nil
}

// LoadJobs reads the job config and returns its rows with coin ids shown as
// display strings. Ids missing from the catalog render as "".
// The table is not changed.
func (s *EditorService) LoadJobs(ctx context.Context) ([]model.RawRow, error) {
	doc, err := s.jobs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	s.doc = doc
	return displayRows(s.dir, doc.Rows), nil
}

// ReloadJobs rereads the job config into the table, discarding unsaved edits.
// The catalog and UI config are not reread.
func (s *EditorService) ReloadJobs(ctx context.Context) error {
	rows, err := s.LoadJobs(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "reload jobs failed", "error", err)
		return err
	}
	s.table.Reload(s.dir, s.uiCfg.Comparisons(), rows)
	s.logger.InfoContext(ctx, "jobs reloaded", "jobs", len(rows))
	return nil
}

// SaveJobs validates rows and persists the non-blank ones, returning how many
// jobs were written. Nothing is written if any row fails validation.
func (s *EditorService) SaveJobs(ctx context.Context, rows []model.RawRow) (int, error) {
	if s.doc == nil {
		return 0, apperrors.Conflict("save jobs: no job config loaded")
	}
	jobs, err := s.engine.ValidateAll(rows)
	if err != nil {
		var fe *rules.FieldError
		if errors.As(err, &fe) {
			s.logger.WarnContext(ctx, "job validation failed",
				"row", fe.Row+1,
				"field", fe.Field.String(),
				"rule", string(fe.Rule),
			)
		}
		return 0, fmt.Errorf("save jobs: %w", err)
	}
	if err := s.jobs.Save(ctx, s.doc, jobs); err != nil {
		s.logger.ErrorContext(ctx, "save jobs failed", "error", err)
		return 0, fmt.Errorf("save jobs: %w", err)
	}
	s.logger.InfoContext(ctx, "jobs saved", "jobs", len(jobs), "rows", len(rows))
	return len(jobs), nil
}

// Save commits any in-flight edit and saves the table.
func (s *EditorService) Save(ctx context.Context) (int, error) {
	rows, err := s.table.Snapshot()
	if err != nil {
		return 0, fmt.Errorf("save jobs: %w", err)
	}
	return s.SaveJobs(ctx, rows)
}

// Table returns the editable table.
func (s *EditorService) Table() *table.Table { return s.table }

// Directory returns the ticker directory built by the last successful Load.
func (s *EditorService) Directory() *ticker.Directory { return s.dir }

// UIConfig returns the UI config read by the last successful Load.
func (s *EditorService) UIConfig() model.UIConfig { return s.uiCfg }

// ActionEnabled reports whether the named hook should be offered.
func (s *EditorService) ActionEnabled(name model.ActionName) bool {
	return s.uiCfg.Actions.Enabled(name)
}

// ActionCommand returns the command of an enabled hook.
func (s *EditorService) ActionCommand(name model.ActionName) (string, bool) {
	if !s.ActionEnabled(name) {
		return "", false
	}
	return s.uiCfg.Actions.Command(name), true
}

// EnabledActions lists the enabled hooks in menu order.
func (s *EditorService) EnabledActions() []model.ActionName {
	out := make([]model.ActionName, 0, 2)
	for _, name := range []model.ActionName{model.ActionPush, model.ActionPull} {
		if s.ActionEnabled(name) {
			out = append(out, name)
		}
	}
	return out
}

func displayRows(dir *ticker.Directory, stored []model.RawRow) []model.RawRow {
	out := make([]model.RawRow, len(stored))
	for i, row := range stored {
		row = row.With(model.FieldSourceCoin, dir.ResolveDisplay(row.Get(model.FieldSourceCoin)))
		row = row.With(model.FieldTargetCoin, dir.ResolveDisplay(row.Get(model.FieldTargetCoin)))
		out[i] = row
	}
	return out
}

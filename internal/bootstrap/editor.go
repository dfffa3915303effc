package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jxcryptonotify/job-editor/config"
	"github.com/jxcryptonotify/job-editor/internal/adapters/hookrunner"
	"github.com/jxcryptonotify/job-editor/internal/data"
	"github.com/jxcryptonotify/job-editor/internal/service"
)

// EditorOptions holds the dependencies for BuildEditor.
type EditorOptions struct {
	Config config.AppConfig
	Logger *slog.Logger
	// Stdout and Stderr receive hook command output.
	Stdout io.Writer
	Stderr io.Writer
}

// Editor bundles the loaded editor service with the host-side hook runner.
type Editor struct {
	Service *service.EditorService
	Hooks   *hookrunner.Runner
}

// BuildEditor wires the file repositories into an EditorService and loads it.
// A missing catalog is downloaded first when an endpoint is configured.
func BuildEditor(ctx context.Context, opts EditorOptions) (*Editor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config

	if cfg.Catalog.DownloadEnabled() {
		fetcher := data.NewCatalogFetcher(cfg.Catalog.Endpoint, cfg.Catalog.FetchTimeout)
		downloaded, err := fetcher.EnsureLocal(ctx, cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("ensure catalog: %w", err)
		}
		if downloaded {
			logger.InfoContext(ctx, "catalog downloaded",
				"path", cfg.Catalog.Path,
				"endpoint", cfg.Catalog.Endpoint,
			)
		}
	}

	svc, err := service.NewEditorService(service.EditorServiceOptions{
		Jobs:    data.NewJobConfigRepo(cfg.Files.JobsConfigPath, cfg.Files.JSONIndent),
		Catalog: data.NewCatalogRepo(cfg.Catalog.Path, cfg.Catalog.ValuesExpr),
		UI:      data.NewUIConfigRepo(cfg.Files.UIConfigPath),
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create editor service: %w", err)
	}
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}

	hooks := hookrunner.NewRunner(hookrunner.RunnerOptions{
		Timeout: cfg.Terminal.HookTimeout,
		Stdout:  opts.Stdout,
		Stderr:  opts.Stderr,
		Logger:  logger,
	})

	return &Editor{Service: svc, Hooks: hooks}, nil
}

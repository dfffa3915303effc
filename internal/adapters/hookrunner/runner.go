// Package hookrunner runs the configured push/pull action commands through the shell.
package hookrunner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	apperrors "github.com/jxcryptonotify/job-editor/internal/errors"
)

const (
	defaultShell = "sh"
	// waitDelay bounds how long output copying may outlive a killed shell.
	waitDelay = 2 * time.Second
)

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Shell   string        // defaults to "sh"
	Timeout time.Duration // zero means no limit beyond the caller's context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
}

// Runner executes hook commands with "<shell> -c <command>".
type Runner struct {
	shell   string
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
}

// NewRunner creates a Runner. Output goes to io.Discard unless writers are given.
func NewRunner(opts RunnerOptions) *Runner {
	if opts.Shell == "" {
		opts.Shell = defaultShell
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{
		shell:   opts.Shell,
		timeout: opts.Timeout,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		logger:  opts.Logger.With("component", "hook_runner"),
	}
}

// Run executes command and waits for it. A non-zero exit status is an error.
func (r *Runner) Run(ctx context.Context, name model.ActionName, command string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return apperrors.ValidationField(string(name), "hook command is empty")
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	r.logger.InfoContext(ctx, "hook started", "hook", string(name))
	if err := cmd.Run(); err != nil {
		r.logger.ErrorContext(ctx, "hook failed",
			"hook", string(name),
			"duration", time.Since(start),
			"error", err,
		)
		return fmt.Errorf("run %s hook: %w", name, err)
	}
	r.logger.InfoContext(ctx, "hook finished",
		"hook", string(name),
		"duration", time.Since(start),
	)
	return nil
}

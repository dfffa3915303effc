// Command job-editor is an interactive terminal editor for the crypto alert job config.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/jxcryptonotify/job-editor/internal/bootstrap"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "jobs> ",
		HistoryFile:     cfg.Terminal.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		logger.ErrorContext(ctx, "open terminal", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI cannot run without a terminal
	}
	defer rl.Close()

	editor, err := bootstrap.BuildEditor(ctx, bootstrap.EditorOptions{
		Config: cfg,
		Logger: logger,
		Stdout: rl.Stdout(),
		Stderr: rl.Stderr(),
	})
	if err != nil {
		logger.ErrorContext(ctx, "load editor", "error", err)
		rl.Close()
		os.Exit(1) //nolint:forbidigo // CLI must signal load failure to shell scripts
	}

	sh := newShell(ctx, rl.Stdout(), editor.Service, editor.Hooks, logger)
	rlCfg := rl.Config
	rlCfg.AutoComplete = completer(sh)
	rl.SetConfig(rlCfg)
	if err := sh.exec("list"); err != nil {
		logger.ErrorContext(ctx, "list jobs", "error", err)
	}
	run(ctx, rl, sh)
}

func run(ctx context.Context, rl *readline.Instance, sh *shell) {
	for ctx.Err() == nil {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if sh.editor.Table().Session().Editor() != nil {
				sh.editor.Table().Session().Cancel()
				continue
			}
			return
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			sh.logger.ErrorContext(ctx, "read command", "error", err)
			return
		}

		err = sh.exec(line)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			_ = writef(rl.Stderr(), "error: %v\n", err)
		}
	}
}

func completer(sh *shell) *readline.PrefixCompleter {
	rows := readline.PcItemDynamic(sh.rowNumbers, readline.PcItemDynamic(columnNames))
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("edit", rows),
		readline.PcItem("set", rows),
		readline.PcItem("del", readline.PcItemDynamic(sh.rowNumbers)),
		readline.PcItem("choose", readline.PcItemDynamic(sh.candidates)),
	}
	for _, name := range commandNames() {
		switch name {
		case "edit", "set", "del", "choose":
			continue
		}
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

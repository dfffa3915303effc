package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/jxcryptonotify/job-editor/internal/core"
	"github.com/jxcryptonotify/job-editor/internal/domain/model"
	"github.com/jxcryptonotify/job-editor/internal/domain/table"
	"github.com/jxcryptonotify/job-editor/internal/service"
)

const maxListedCandidates = 20

var errQuit = errors.New("quit")

type commandFn func(sh *shell, args []string) error

type command struct {
	name        string
	usage       string
	description string
	run         commandFn
}

// shell executes editor commands against one loaded EditorService.
type shell struct {
	ctx    context.Context
	out    io.Writer
	editor *service.EditorService
	hooks  core.HookRunner
	logger *slog.Logger
}

func newShell(ctx context.Context, out io.Writer, editor *service.EditorService, hooks core.HookRunner, logger *slog.Logger) *shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &shell{ctx: ctx, out: out, editor: editor, hooks: hooks, logger: logger}
}

func commands() map[string]command {
	return map[string]command{
		"help":   {name: "help", usage: "help", description: "Show available commands", run: runHelp},
		"list":   {name: "list", usage: "list", description: "Show the job table", run: runList},
		"add":    {name: "add", usage: "add", description: "Append a blank row", run: runAdd},
		"del":    {name: "del", usage: "del <row>...", description: "Delete rows", run: runDelete},
		"edit":   {name: "edit", usage: "edit <row> <column>", description: "Open an editor on a cell", run: runEdit},
		"type":   {name: "type", usage: "type <text>", description: "Replace the editor text (filters coin editors)", run: runType},
		"filter": {name: "filter", usage: "filter <text>", description: "Filter coin candidates", run: runFilter},
		"choose": {name: "choose", usage: "choose <n|value>", description: "Pick a candidate or operator", run: runChoose},
		"commit": {name: "commit", usage: "commit", description: "Write the editor value to the cell", run: runCommit},
		"cancel": {name: "cancel", usage: "cancel", description: "Discard the editor value", run: runCancel},
		"set":    {name: "set", usage: "set <row> <column> <value>", description: "Edit and commit a cell in one step", run: runSet},
		"save":   {name: "save", usage: "save", description: "Validate and write the job config", run: runSave},
		"reload": {name: "reload", usage: "reload", description: "Reread the job config, discarding edits", run: runReload},
		"push":   {name: "push", usage: "push", description: "Run the push action", run: runAction(model.ActionPush)},
		"pull":   {name: "pull", usage: "pull", description: "Run the pull action", run: runAction(model.ActionPull)},
		"quit":   {name: "quit", usage: "quit", description: "Leave the editor", run: runQuit},
	}
}

func commandNames() []string {
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// exec runs one input line. It returns errQuit when the user asked to leave.
func (sh *shell) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	if name == "exit" {
		name = "quit"
	}
	cmd, ok := commands()[name]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	sh.logger.DebugContext(sh.ctx, "command", "name", name, "args", len(fields)-1)
	return cmd.run(sh, fields[1:])
}

func runHelp(sh *shell, _ []string) error {
	cmds := commands()
	for _, name := range commandNames() {
		c := cmds[name]
		if err := writef(sh.out, "  %-28s %s\n", c.usage, c.description); err != nil {
			return err
		}
	}
	return nil
}

func runList(sh *shell, _ []string) error {
	t := sh.editor.Table()
	current, editing := t.Session().Current()

	w := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	header := []string{"#"}
	for _, c := range model.Columns {
		header = append(header, c.Label)
	}
	if err := writef(w, "%s\n", strings.Join(header, "\t")); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows() {
		cells := []string{strconv.Itoa(i + 1)}
		for _, c := range model.Columns {
			v := row.Values.Get(c.Field)
			if editing && current.RowID == row.ID && current.Field == c.Field {
				v = "*" + t.Session().Editor().Value()
			}
			cells = append(cells, v)
		}
		if err := writef(w, "%s\n", strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return w.Flush()
}

func runAdd(sh *shell, _ []string) error {
	t := sh.editor.Table()
	id, err := t.AddRow()
	if err != nil {
		return fmt.Errorf("add row: %w", err)
	}
	return writef(sh.out, "row %d added\n", t.Position(id)+1)
}

func runDelete(sh *shell, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: del <row>...")
	}
	rows := sh.editor.Table().Rows()
	ids := make([]uuid.UUID, 0, len(args))
	for _, arg := range args {
		row, err := rowAt(rows, arg)
		if err != nil {
			return err
		}
		ids = append(ids, row.ID)
	}
	n, err := sh.editor.Table().DeleteRows(ids...)
	if err != nil {
		return fmt.Errorf("delete rows: %w", err)
	}
	return writef(sh.out, "%d row(s) deleted\n", n)
}

func runEdit(sh *shell, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: edit <row> <column>")
	}
	ed, err := sh.begin(args[0], args[1])
	if err != nil {
		return err
	}
	return sh.describe(ed)
}

func runType(sh *shell, args []string) error {
	ed, err := sh.active()
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	switch e := ed.(type) {
	case *table.FilteredEditor:
		e.SetFilter(text)
		return sh.describe(e)
	case *table.ChoiceEditor:
		return e.Choose(text)
	default:
		ed.SetValue(text)
		return nil
	}
}

func runFilter(sh *shell, args []string) error {
	ed, err := sh.active()
	if err != nil {
		return err
	}
	fe, ok := ed.(*table.FilteredEditor)
	if !ok {
		return fmt.Errorf("filter needs a coin editor, the active editor is %s", ed.Kind())
	}
	fe.SetFilter(strings.Join(args, " "))
	return sh.describe(fe)
}

func runChoose(sh *shell, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: choose <n|value>")
	}
	ed, err := sh.active()
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	switch e := ed.(type) {
	case *table.FilteredEditor:
		return e.Choose(pick(e.Candidates(), text))
	case *table.ChoiceEditor:
		return e.Choose(pick(e.Options(), text))
	default:
		return fmt.Errorf("choose needs a choice editor, the active editor is %s", ed.Kind())
	}
}

func runCommit(sh *shell, _ []string) error {
	return sh.editor.Table().Session().Handle(table.TriggerConfirm)
}

func runCancel(sh *shell, _ []string) error {
	sh.editor.Table().Session().Cancel()
	return nil
}

func runSet(sh *shell, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set <row> <column> <value>")
	}
	if _, err := sh.begin(args[0], args[1]); err != nil {
		return err
	}
	return sh.editor.Table().Session().CommitValue(strings.Join(args[2:], " "))
}

func runSave(sh *shell, _ []string) error {
	n, err := sh.editor.Save(sh.ctx)
	if err != nil {
		return err
	}
	return writef(sh.out, "saved %d job(s)\n", n)
}

func runReload(sh *shell, _ []string) error {
	if err := sh.editor.ReloadJobs(sh.ctx); err != nil {
		return err
	}
	return writef(sh.out, "reloaded %d row(s)\n", sh.editor.Table().Len())
}

func runAction(name model.ActionName) commandFn {
	return func(sh *shell, _ []string) error {
		command, ok := sh.editor.ActionCommand(name)
		if !ok {
			return fmt.Errorf("%s action is disabled", name)
		}
		if sh.hooks == nil {
			return fmt.Errorf("%s action: no hook runner configured", name)
		}
		if err := sh.hooks.Run(sh.ctx, name, command); err != nil {
			return err
		}
		return writef(sh.out, "%s done\n", name)
	}
}

func runQuit(_ *shell, _ []string) error {
	return errQuit
}

func (sh *shell) begin(rowArg, column string) (table.Editor, error) {
	row, err := rowAt(sh.editor.Table().Rows(), rowArg)
	if err != nil {
		return nil, err
	}
	field, err := model.ParseField(strings.ToLower(column))
	if err != nil {
		return nil, err
	}
	return sh.editor.Table().Session().Begin(row.ID, field)
}

func (sh *shell) active() (table.Editor, error) {
	ed := sh.editor.Table().Session().Editor()
	if ed == nil {
		return nil, errors.New("no cell is being edited (use edit <row> <column>)")
	}
	return ed, nil
}

func (sh *shell) describe(ed table.Editor) error {
	if err := writef(sh.out, "%s: %q\n", ed.Kind(), ed.Value()); err != nil {
		return err
	}
	var options []string
	switch e := ed.(type) {
	case *table.FilteredEditor:
		options = e.Candidates()
	case *table.ChoiceEditor:
		options = e.Options()
	}
	for i, o := range options {
		if i == maxListedCandidates {
			return writef(sh.out, "  ... %d more\n", len(options)-maxListedCandidates)
		}
		if err := writef(sh.out, "  %2d) %s\n", i+1, o); err != nil {
			return err
		}
	}
	return nil
}

// candidates lists what "choose" accepts for the active editor, for completion.
func (sh *shell) candidates(string) []string {
	switch e := sh.editor.Table().Session().Editor().(type) {
	case *table.FilteredEditor:
		return e.Candidates()
	case *table.ChoiceEditor:
		return e.Options()
	default:
		return nil
	}
}

func (sh *shell) rowNumbers(string) []string {
	n := sh.editor.Table().Len()
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i + 1)
	}
	return out
}

func columnNames(string) []string {
	out := make([]string, 0, len(model.Columns))
	for _, c := range model.Columns {
		out = append(out, c.Name)
	}
	return out
}

// pick resolves a 1-based position in options, or returns text unchanged.
func pick(options []string, text string) string {
	if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	return text
}

func rowAt(rows []table.Row, arg string) (table.Row, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(rows) {
		return table.Row{}, fmt.Errorf("no row %q", arg)
	}
	return rows[n-1], nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

package commands

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/tasklist"
)

func init() {
	Register(&ShellCmd{})
}

// errEditInProgress is returned by the shell's add while an edit is pending.
var errEditInProgress = errors.New("edit in progress (update or cancel first)")

// ShellCmd implements an interactive session. Unlike one-shot commands it
// keeps the filter, the edit buffer and the pending priority between lines.
type ShellCmd struct {
	in io.Reader
}

// SetInput sets the input reader (for testing). Defaults to os.Stdin.
func (c *ShellCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return nil }
func (c *ShellCmd) Synopsis() string  { return "Interactive session" }
func (c *ShellCmd) Usage() string     { return "todo shell" }
func (c *ShellCmd) NeedsStore() bool  { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, tasks *tasklist.Store, args []string, out, errOut io.Writer) int {
	in := c.in
	if in == nil {
		in = os.Stdin
	}
	interactive := isTerminal(in)

	s := &shellSession{
		cfg:      cfg,
		tasks:    tasks,
		out:      out,
		errOut:   errOut,
		priority: defaultPriority(cfg),
	}

	// Lines have no length limit; a final line without newline still runs.
	reader := bufio.NewReader(in)
	for ctx.Err() == nil {
		if interactive {
			fmt.Fprint(out, s.prompt())
		}
		line, err := reader.ReadString('\n')
		if line != "" && s.exec(ctx, line) {
			break
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	if s.storageFailed {
		return exitcode.StorageError
	}
	return exitcode.Success
}

// shellSession is the transient state of one shell run.
type shellSession struct {
	cfg    *config.Config
	tasks  *tasklist.Store
	out    io.Writer
	errOut io.Writer

	// priority is used by the next add and reset to the default afterwards.
	priority tasklist.Priority

	storageFailed bool
}

func (s *shellSession) prompt() string {
	if t, ok := s.tasks.Editing(); ok {
		return fmt.Sprintf("edit #%d> ", t.ID)
	}
	return "todo> "
}

// exec runs one input line. Returns true when the session should end.
func (s *shellSession) exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	var err error
	switch word {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(s.out, shellHelpText)
		return false
	case "list", "ls":
		s.list()
		return false
	case "add":
		err = s.add(ctx, rest)
	case "priority":
		var p tasklist.Priority
		if p, err = tasklist.ParsePriority(rest); err == nil {
			s.priority = p
		}
	case "filter":
		var f tasklist.Filter
		if f, err = tasklist.ParseFilter(rest); err == nil {
			s.tasks.SetFilter(f)
			s.list()
			return false
		}
	case "done", "toggle":
		err = s.withTask(rest, func(t tasklist.Task) error {
			_, err := s.tasks.ToggleStatus(ctx, t.ID)
			return err
		})
	case "rm", "delete":
		err = s.withTask(rest, func(t tasklist.Task) error {
			return s.tasks.Delete(ctx, t.ID)
		})
	case "edit":
		var num int
		if num, err = parseShellRef(rest); err == nil {
			if err = beginEdit(s.tasks, num); err == nil {
				buffered, _ := s.tasks.Editing()
				output.FormatEditing(s.out, buffered)
				return false
			}
		}
	case "update":
		_, err = s.tasks.ApplyEdit(ctx, rest)
	case "cancel":
		s.tasks.CancelEdit()
	default:
		fmt.Fprintf(s.errOut, "error: unknown command: %s\n", word)
		return false
	}

	if err != nil {
		if reportError(s.errOut, err) == exitcode.StorageError {
			s.storageFailed = true
		}
		return false
	}
	if !s.cfg.Quiet {
		fmt.Fprintln(s.out, "ok")
	}
	return false
}

func (s *shellSession) list() {
	if n := output.FormatTasks(s.out, s.tasks.VisibleTasks()); n == 0 && !s.cfg.Quiet {
		fmt.Fprintln(s.out, output.EmptyMessage)
	}
}

func (s *shellSession) add(ctx context.Context, title string) error {
	if _, editing := s.tasks.Editing(); editing {
		return errEditInProgress
	}
	if _, err := s.tasks.Add(ctx, title, s.priority); err != nil {
		return err
	}
	s.priority = defaultPriority(s.cfg)
	return nil
}

// withTask resolves a display number under the current filter and calls fn.
func (s *shellSession) withTask(arg string, fn func(tasklist.Task) error) error {
	num, err := parseShellRef(arg)
	if err != nil {
		return err
	}
	targets, err := resolveTaskRefs(s.tasks, []int{num})
	if err != nil {
		return err
	}
	return fn(targets[0])
}

func parseShellRef(arg string) (int, error) {
	if arg == "" {
		return 0, ErrTaskRefRequired
	}
	return ParseTaskRef(arg)
}

func defaultPriority(cfg *config.Config) tasklist.Priority {
	if cfg.DefaultPriority.Valid() {
		return cfg.DefaultPriority
	}
	return tasklist.DefaultPriority
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const shellHelpText = `Commands:
  list                       Show tasks (numbers follow the current filter)
  add <title...>             Add a task with the pending priority
  priority low|medium|high   Set the priority for the next add
  done <n>                   Toggle completed / not completed
  rm <n>                     Delete a task
  edit <n>                   Start editing a task
  update <title...>          Save the edited title
  cancel                     Discard the edit in progress
  filter all|low|medium|high Show only one priority
  help                       Show this help
  quit                       Leave the shell
`

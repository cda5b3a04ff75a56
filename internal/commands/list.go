package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/tasklist"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list --priority <p>`.
type ListCmd struct {
	filter filterFlag
}

// SetFilter sets the priority filter (for testing).
func (c *ListCmd) SetFilter(f tasklist.Filter) {
	c.filter.f = f
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todo list [--priority all|low|medium|high]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	c.filter = filterFlag{}
	fs.Var(&c.filter, "priority", "")
	fs.Var(&c.filter, "p", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, tasks *tasklist.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks.SetFilter(c.filter.value())

	if n := output.FormatTasks(out, tasks.VisibleTasks()); n == 0 && !cfg.Quiet {
		fmt.Fprintln(out, output.EmptyMessage)
	}
	return exitcode.Success
}

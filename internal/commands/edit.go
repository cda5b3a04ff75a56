package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/tasklist"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: it replaces a task's title,
// keeping its status and priority.
type EditCmd struct {
	filter filterFlag
}

// SetFilter sets the priority filter the task number refers to (for testing).
func (c *EditCmd) SetFilter(f tasklist.Filter) {
	c.filter.f = f
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Change a task's title" }
func (c *EditCmd) Usage() string     { return "todo edit [--priority <filter>] <n> <title...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.filter = filterFlag{}
	fs.Var(&c.filter, "priority", "")
	fs.Var(&c.filter, "p", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, tasks *tasklist.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return reportError(errOut, ErrTaskRefRequired)
	}
	num, err := ParseTaskRef(args[0])
	if err != nil {
		return reportError(errOut, err)
	}

	tasks.SetFilter(c.filter.value())
	if err := beginEdit(tasks, num); err != nil {
		return reportError(errOut, err)
	}

	if _, err := tasks.ApplyEdit(ctx, strings.Join(args[1:], " ")); err != nil {
		tasks.CancelEdit()
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// beginEdit starts editing the task shown at display number num.
// Completed tasks cannot be edited.
func beginEdit(tasks *tasklist.Store, num int) error {
	targets, err := resolveTaskRefs(tasks, []int{num})
	if err != nil {
		return err
	}
	if targets[0].Status {
		return errCompletedTask
	}
	_, err = tasks.BeginEdit(targets[0].ID)
	return err
}

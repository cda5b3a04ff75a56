package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/tasklist"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	filter filterFlag
}

// SetFilter sets the priority filter the task numbers refer to (for testing).
func (c *RmCmd) SetFilter(f tasklist.Filter) {
	c.filter.f = f
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete tasks" }
func (c *RmCmd) Usage() string     { return "todo rm [--priority <filter>] <n...>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	c.filter = filterFlag{}
	fs.Var(&c.filter, "priority", "")
	fs.Var(&c.filter, "p", "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, tasks *tasklist.Store, args []string, out, errOut io.Writer) int {
	// Parse task references
	nums, err := ParseTaskRefs(args)
	if err != nil {
		return reportError(errOut, err)
	}

	tasks.SetFilter(c.filter.value())
	targets, err := resolveTaskRefs(tasks, nums)
	if err != nil {
		return reportError(errOut, err)
	}

	for _, t := range targets {
		if err := tasks.Delete(ctx, t.ID); err != nil {
			return reportError(errOut, err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

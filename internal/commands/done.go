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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Running it on a completed task
// marks it open again.
type DoneCmd struct {
	filter filterFlag
}

// SetFilter sets the priority filter the task numbers refer to (for testing).
func (c *DoneCmd) SetFilter(f tasklist.Filter) {
	c.filter.f = f
}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle tasks completed / not completed" }
func (c *DoneCmd) Usage() string     { return "todo done [--priority <filter>] <n...>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	c.filter = filterFlag{}
	fs.Var(&c.filter, "priority", "")
	fs.Var(&c.filter, "p", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, tasks *tasklist.Store, args []string, out, errOut io.Writer) int {
	// Parse task references
	nums, err := ParseTaskRefs(args)
	if err != nil {
		return reportError(errOut, err)
	}

	// Resolve numbers against the same view `todo list` shows
	tasks.SetFilter(c.filter.value())
	targets, err := resolveTaskRefs(tasks, nums)
	if err != nil {
		return reportError(errOut, err)
	}

	for _, t := range targets {
		if _, err := tasks.ToggleStatus(ctx, t.ID); err != nil {
			return reportError(errOut, err)
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

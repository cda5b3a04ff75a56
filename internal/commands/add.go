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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority priorityFlag
}

// SetPriority sets the priority (for testing).
func (c *AddCmd) SetPriority(p tasklist.Priority) {
	c.priority.p = p
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "todo add [--priority low|medium|high] <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	c.priority = priorityFlag{}
	fs.Var(&c.priority, "priority", "")
	fs.Var(&c.priority, "p", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, tasks *tasklist.Store, args []string, out, errOut io.Writer) int {
	// Join args to form title; blank titles are rejected by the store
	title := strings.Join(args, " ")

	if _, err := tasks.Add(ctx, title, c.priority.or(cfg.DefaultPriority)); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

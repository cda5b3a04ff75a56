// Package commands implements the todo subcommands and the interactive shell.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/tasklist"
)

// Command is one subcommand of the todo CLI.
type Command interface {
	// Name is the word typed after "todo".
	Name() string

	// Aliases are extra words that select the same command.
	Aliases() []string

	// Synopsis and Usage feed the help listing.
	Synopsis() string
	Usage() string

	// NeedsStore reports whether Run receives a loaded task store.
	NeedsStore() bool

	// RegisterFlags adds command flags to fs. It is called once per
	// invocation and resets any flag state from an earlier one.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional args left after flag
	// parsing and returns the process exit code. tasks is nil when
	// NeedsStore is false.
	Run(ctx context.Context, cfg *config.Config, tasks *tasklist.Store, args []string, out, errOut io.Writer) int
}

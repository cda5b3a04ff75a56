// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task number, empty title).
	UserError = 1

	// ConfigError indicates an invalid config.yaml, .env or override.
	ConfigError = 2

	// StorageError indicates the task database could not be opened, read or written.
	StorageError = 3
)

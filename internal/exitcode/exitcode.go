// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty title, no such row).
	UserError = 1

	// StoreInitError indicates the store could not be opened. Not recoverable.
	StoreInitError = 2

	// StoreError indicates a failed store operation.
	StoreError = 3

	// UIError indicates the terminal UI could not run.
	UIError = 4

	// OutputError indicates results could not be written to stdout or a file.
	// The store is untouched.
	OutputError = 5
)

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/storage"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tasklist help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store storage.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasklist                                          Open the task list
  tasklist ui [common flags]                        Open the task list
  tasklist list [common flags]                      Print all tasks
  tasklist add [common flags] <title...>            Create a task
  tasklist edit [common flags] <n> <title...>       Rename task n
  tasklist rm [common flags] <n>                    Delete task n
  tasklist export [common flags] [--format json|csv|pdf] [--out <file>]
  tasklist help
  tasklist version

Common flags:
  --data <dir>     Override data directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

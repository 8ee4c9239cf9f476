package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/config"
	"tasklist/internal/controller"
	"tasklist/internal/exitcode"
	"tasklist/internal/storage"
	"tasklist/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command, the default when no command is given.
type UICmd struct {
	opts []tea.ProgramOption
}

// SetProgramOptions sets extra bubbletea options (for testing).
func (c *UICmd) SetProgramOptions(opts ...tea.ProgramOption) {
	c.opts = opts
}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return nil }
func (c *UICmd) Synopsis() string  { return "Open the task list" }
func (c *UICmd) Usage() string     { return "tasklist ui" }
func (c *UICmd) NeedsStore() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, store storage.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// The terminal belongs to the UI; logs go to a file.
	f, err := tea.LogToFile(cfg.LogPath(), config.AppName)
	if err != nil {
		fmt.Fprintf(errOut, "error: open log: %v\n", err)
		return exitcode.UserError
	}
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetPrefix("")
		f.Close()
	}()

	ctl := controller.New(store, log.Default())
	if err := tui.Run(ctx, ctl, c.opts...); err != nil {
		fmt.Fprintf(errOut, "error: ui: %v\n", err)
		return exitcode.UIError
	}
	return exitcode.Success
}

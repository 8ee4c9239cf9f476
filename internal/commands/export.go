package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/export"
	"tasklist/internal/storage"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	out    string
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write all tasks as JSON, CSV or PDF" }
func (c *ExportCmd) Usage() string {
	return "tasklist export [--format json|csv|pdf] [--out <file>]"
}
func (c *ExportCmd) NeedsStore() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.format, "f", "json", "")
	fs.StringVar(&c.out, "out", "", "")
	fs.StringVar(&c.out, "o", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, store storage.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	format := strings.ToLower(strings.TrimSpace(c.format))
	if format == "" {
		format = "json"
	}
	if !slices.Contains(export.Formats, format) {
		fmt.Fprintf(errOut, "error: unknown export format: %s\n", c.format)
		return exitcode.UserError
	}
	if format == "pdf" && c.out == "" {
		fmt.Fprintln(errOut, "error: pdf export needs --out")
		return exitcode.UserError
	}

	s := newSession(ctx, cfg, store, errOut)
	if code := s.load(); code != exitcode.Success {
		return code
	}

	if c.out == "" {
		if err := export.Write(out, format, s.ctl.Tasks()); err != nil {
			fmt.Fprintf(errOut, "error: export: %v\n", err)
			return exitcode.OutputError
		}
		return exitcode.Success
	}

	if err := writeFile(c.out, format, s.ctl.Tasks()); err != nil {
		fmt.Fprintf(errOut, "error: export: %v\n", err)
		return exitcode.OutputError
	}
	if !cfg.Quiet {
		fmt.Fprintf(out, "ok: %s\n", c.out)
	}
	return exitcode.Success
}

// writeFile exports to path, removing the file if encoding fails.
func writeFile(path, format string, tasks []storage.Task) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			os.Remove(path)
		}
	}()
	return export.Write(f, format, tasks)
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"tasklist/internal/config"
	"tasklist/internal/controller"
	"tasklist/internal/exitcode"
	"tasklist/internal/storage"
)

// session drives one controller for the lifetime of a CLI command.
type session struct {
	ctx    context.Context
	ctl    *controller.Controller
	errOut io.Writer
}

func newSession(ctx context.Context, cfg *config.Config, store storage.Store, errOut io.Writer) *session {
	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(errOut, "debug: ", 0)
	}
	return &session{ctx: ctx, ctl: controller.New(store, logger), errOut: errOut}
}

// load fills the controller so row numbers match list output.
func (s *session) load() int {
	return s.do(s.ctl.Load(s.ctx))
}

// checkRow reports a row the last load did not return.
func (s *session) checkRow(row int) int {
	if row >= s.ctl.Len() {
		fmt.Fprintf(s.errOut, "error: task number out of range: %d\n", row+1)
		return exitcode.UserError
	}
	return exitcode.Success
}

// do runs a begun call to completion and maps its error to an exit code.
func (s *session) do(call controller.Call, err error) int {
	if err == nil {
		_, err = s.ctl.Run(call)
	}
	return s.report(err)
}

func (s *session) report(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, controller.ErrEmptyTitle):
		fmt.Fprintln(s.errOut, "error: title required")
		return exitcode.UserError
	case errors.Is(err, controller.ErrNoSuchRow):
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, storage.ErrNotFound):
		fmt.Fprintln(s.errOut, "error: task no longer exists")
		return exitcode.StoreError
	default:
		fmt.Fprintf(s.errOut, "error: storage error: %v\n", err)
		return exitcode.StoreError
	}
}

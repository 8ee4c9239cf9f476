package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/controller"
)

// Run shows the task list until the user quits or ctx is cancelled.
// Extra options are passed to the program; tests use them to swap the terminal.
func Run(ctx context.Context, ctl *controller.Controller, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(ctx, ctl), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

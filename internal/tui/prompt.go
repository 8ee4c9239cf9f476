package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/google/uuid"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/storage"
)

const (
	promptMessage = "What do you want to do"
	saveLabel     = "Save Task"
	cancelLabel   = "Cancel"
)

type promptKind int

const (
	promptAdd promptKind = iota
	promptEdit
)

// prompt is the shared add/edit dialog: a title, a message and one text input.
type prompt struct {
	kind    promptKind
	taskID  uuid.UUID // task being edited (promptEdit only)
	title   string
	message string
	input   textinput.Model
}

func newAddPrompt() prompt {
	return newPrompt(promptAdd, uuid.Nil, "New Task", "")
}

func newEditPrompt(id uuid.UUID, current string) prompt {
	return newPrompt(promptEdit, id, "Edit Task", current)
}

func newPrompt(kind promptKind, id uuid.UUID, title, value string) prompt {
	ti := textinput.New()
	ti.Placeholder = "New Task"
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(value)
	ti.CursorEnd()

	return prompt{
		kind:    kind,
		taskID:  id,
		title:   title,
		message: promptMessage,
		input:   ti,
	}
}

// focus gives the input keyboard focus and returns its blink command.
func (p *prompt) focus() tea.Cmd {
	return p.input.Focus()
}

// value returns the current text.
func (p prompt) value() string {
	return p.input.Value()
}

// canSave reports whether confirm would do anything.
func (p prompt) canSave() bool {
	return storage.ValidateTitle(p.value()) == nil
}

func (p prompt) update(msg tea.Msg) (prompt, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p prompt) view() string {
	save := buttonStyle.Render("[ " + saveLabel + " ]")
	if !p.canSave() {
		save = disabledStyle.Render("[ " + saveLabel + " ]")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, save, "  ", buttonStyle.Render("[ "+cancelLabel+" ]"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		promptTitleStyle.Render(p.title),
		p.message,
		"",
		p.input.View(),
		"",
		buttons,
	)
	return promptBoxStyle.Render(body)
}

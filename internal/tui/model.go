// Package tui implements the interactive task list on bubbletea.
package tui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/controller"
	"tasklist/internal/output"
)

const (
	appTitle = "Task List"
	addHint  = "+ add (a)"

	// chromeLines is the height taken by the title bar, gaps and help line.
	chromeLines = 4
)

// flushedMsg reports the end of the flush that precedes a suspend.
// The controller has already logged a failure.
type flushedMsg struct{ err error }

// Model is the bubbletea model of the task list screen.
type Model struct {
	ctx  context.Context
	ctl  *controller.Controller
	keys listKeys
	pk   promptKeys
	help help.Model

	prompt    prompt
	prompting bool

	cursor int
	offset int
	width  int
	height int
}

// New creates the screen model. The controller is loaded by Init.
func New(ctx context.Context, ctl *controller.Controller) Model {
	return Model{
		ctx:  ctx,
		ctl:  ctl,
		keys: defaultListKeys(),
		pk:   defaultPromptKeys(),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	call, err := m.ctl.Load(m.ctx)
	if err != nil {
		log.Printf("load: %v", err)
		return nil
	}
	return run(call)
}

// run turns a controller call into a command whose message is its Result.
func run(call controller.Call) tea.Cmd {
	return func() tea.Msg {
		return call()
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if msg.Width > 10 {
			m.prompt.input.Width = min(40, msg.Width-10)
		}
		m.scroll()
		return m, nil

	case controller.Result:
		if err := m.ctl.Apply(msg); err == nil && msg.Op == controller.OpInsert {
			m.cursor = m.ctl.Len() - 1
		}
		m.clamp()
		return m, nil

	case flushedMsg:
		// Every mutation has committed, so suspend even if the checkpoint failed
		return m, tea.Suspend

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateList(msg)
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.scroll()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.ctl.Len()-1 {
			m.cursor++
			m.scroll()
		}

	case key.Matches(msg, m.keys.Add):
		m.prompt = newAddPrompt()
		m.prompting = true
		return m, m.prompt.focus()

	case key.Matches(msg, m.keys.Edit):
		// The row under the cursor may be about to move or vanish
		if m.ctl.Pending() {
			return m, nil
		}
		t, err := m.ctl.Task(m.cursor)
		if err != nil {
			return m, nil
		}
		m.prompt = newEditPrompt(t.ID, t.Title)
		m.prompting = true
		return m, m.prompt.focus()

	case key.Matches(msg, m.keys.Delete):
		call, err := m.ctl.Remove(m.ctx, m.cursor)
		if err != nil {
			if !errors.Is(err, controller.ErrNoSuchRow) {
				log.Printf("delete: %v", err)
			}
			return m, nil
		}
		return m, run(call)

	case key.Matches(msg, m.keys.Suspend):
		return m, m.flush()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.pk.Cancel):
		m.prompting = false
		return m, nil

	case key.Matches(msg, m.pk.Save):
		if !m.prompt.canSave() {
			return m, nil
		}
		var (
			call controller.Call
			err  error
		)
		switch m.prompt.kind {
		case promptAdd:
			call, err = m.ctl.Add(m.ctx, m.prompt.value())
		case promptEdit:
			row, ok := m.ctl.Row(m.prompt.taskID)
			if !ok {
				log.Printf("edit: task %s is no longer listed", m.prompt.taskID)
				m.prompting = false
				return m, nil
			}
			call, err = m.ctl.Edit(m.ctx, row, m.prompt.value())
		}
		if err != nil {
			// Busy: keep the prompt so the user can save again.
			log.Printf("save: %v", err)
			return m, nil
		}
		m.prompting = false
		return m, run(call)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.update(msg)
	return m, cmd
}

func (m Model) flush() tea.Cmd {
	ctl, ctx := m.ctl, m.ctx
	return func() tea.Msg {
		return flushedMsg{err: ctl.Flush(ctx)}
	}
}

// listHeight is the number of rows that fit on screen; 0 means unbounded.
func (m Model) listHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(1, m.height-chromeLines)
}

func (m *Model) clamp() {
	if n := m.ctl.Len(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if maxOffset := max(0, m.ctl.Len()-h); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

// Cursor returns the selected row.
func (m Model) Cursor() int { return m.cursor }

// Prompting reports whether the text prompt is open.
func (m Model) Prompting() bool { return m.prompting }

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.titleBar())
	b.WriteString("\n\n")

	if m.prompting {
		box := m.prompt.view()
		if m.width > 0 && m.height > 0 {
			box = lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Center, box)
		}
		b.WriteString(box)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(m.help.View(m.pk)))
		return b.String()
	}

	b.WriteString(m.rows())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) titleBar() string {
	if m.width <= 0 {
		return titleBarStyle.Render(appTitle + "  " + addHint)
	}
	// Padding(0, 1) adds one cell on each side
	gap := m.width - 2 - lipgloss.Width(appTitle) - lipgloss.Width(addHint)
	if gap < 2 {
		gap = 2
	}
	return titleBarStyle.Render(appTitle + strings.Repeat(" ", gap) + addHint)
}

func (m Model) rows() string {
	titles := m.ctl.Titles()
	if len(titles) == 0 {
		if m.ctl.Pending() {
			return emptyStyle.Render("Loading…") + "\n"
		}
		return emptyStyle.Render("No tasks yet. Press a to add one.") + "\n"
	}

	end := len(titles)
	if h := m.listHeight(); h > 0 {
		end = min(end, m.offset+h)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		title := output.NormalizeTitle(titles[i])
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + title))
		} else {
			b.WriteString(rowStyle.Render(title))
		}
		b.WriteString("\n")
	}
	return b.String()
}

package tui

import (
	"context"
	"io"
	"log"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/controller"
	"tasklist/internal/testutil"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestEditPrompt_FollowsTaskNotRow(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("A")
	store.AddTask("B")
	ctl := controller.New(store, log.New(io.Discard, "", 0))
	m := New(context.Background(), ctl)
	m, _ = step(t, m, m.Init()())

	// open edit on B, then let A disappear so B moves to row 0
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, promptEdit, m.prompt.kind)
	call, err := ctl.Remove(context.Background(), 0)
	require.NoError(t, err)
	_, err = ctl.Run(call)
	require.NoError(t, err)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	step(t, m, cmd())
	assert.Equal(t, []string{"B!"}, store.Titles())
}

func TestEditPrompt_TaskGone(t *testing.T) {
	store := testutil.NewFakeStore()
	store.AddTask("A")
	store.AddTask("B")
	ctl := controller.New(store, log.New(io.Discard, "", 0))
	m := New(context.Background(), ctl)
	m, _ = step(t, m, m.Init()())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.prompting)
	call, err := ctl.Remove(context.Background(), 0)
	require.NoError(t, err)
	_, err = ctl.Run(call)
	require.NoError(t, err)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" renamed")})
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.prompting)
	assert.Zero(t, store.Updates)
	assert.Equal(t, []string{"B"}, store.Titles())
}

package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchy/internal/tui"
)

func captureProgram(t *testing.T) *tui.Model {
	t.Helper()
	captured := &tui.Model{}
	original := runProgram
	runProgram = func(m tea.Model) (tea.Model, error) {
		*captured = m.(tui.Model)
		return m, nil
	}
	t.Cleanup(func() { runProgram = original })
	return captured
}

func TestRootCommand_LaunchesHiddenPalette(t *testing.T) {
	setupHome(t)
	useMemoryClipboard(t)
	captured := captureProgram(t)

	_, err := executeCommand()
	require.NoError(t, err)
	assert.False(t, captured.Session().Revealed())
	assert.Equal(t, "#FFFFFF", captured.Session().Color())
}

func TestRootCommand_ColorArgumentRevealsPalette(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "opacity: 0.25\n")
	useMemoryClipboard(t)
	captured := captureProgram(t)

	_, err := executeCommand("abc")
	require.NoError(t, err)
	assert.True(t, captured.Session().Revealed())
	assert.Equal(t, "#ABC", captured.Session().Color())
	assert.InDelta(t, 0.25, captured.Session().Opacity(), 1e-9)
}

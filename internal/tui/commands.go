package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchy/internal/clipboard"
)

// copyCmd writes value to the clipboard off the update loop.
func copyCmd(w clipboard.Writer, value string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Result: clipboard.Copy(context.Background(), w, value)}
	}
}

// clearStatusCmd schedules a status dismissal for the given sequence number.
func clearStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

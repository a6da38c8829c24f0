// Package tui provides the Bubble Tea integration for 2048.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long a status message stays on screen.
const flashDuration = 3 * time.Second

// FlashClearMsg is sent when a status message expires.
type FlashClearMsg struct {
	ID int
}

// flashCmd returns a command that expires the status message with the given id.
// A newer message bumps the id, so stale timers are ignored.
func flashCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FlashClearMsg{ID: id}
	})
}

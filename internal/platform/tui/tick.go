// Package tui runs games in the terminal with Bubble Tea: the tick loop,
// key bindings, colored rendering, the mode selector and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to drain queued input into the game.
type TickMsg time.Time

// tickInterval converts a rate in ticks per second to a period. Rates
// below one are treated as one tick per second.
func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

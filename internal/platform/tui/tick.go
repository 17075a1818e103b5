// Package tui runs the games in a terminal with Bubble Tea.
// It maps keys and the mouse to actions, drives the tick loop, and hosts
// the menu, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the loop
// that scheduled it, so ticks of a closed game never drive a new one.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastLoopID atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return lastLoopID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick for loop id
// after a frame at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

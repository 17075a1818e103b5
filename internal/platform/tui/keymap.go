package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microgames/internal/core"
)

// gameKeys binds terminal keys to game actions. Arrows and WASD both steer.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,
	"up":     core.ActionUp,
	"w":      core.ActionUp,
	"down":   core.ActionDown,
	"s":      core.ActionDown,
	"left":   core.ActionLeft,
	"a":      core.ActionLeft,
	"right":  core.ActionRight,
	"d":      core.ActionRight,
	" ":      core.ActionFire,
	"c":      core.ActionHold,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"p":      core.ActionPause,
	"esc":    core.ActionPause,
	"r":      core.ActionRestart,
}

// MenuAction is a navigation step on the menu screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// menuKeys adds vim keys to the arrows; Space selects like Enter.
var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"left":   MenuActionLeft,
	"a":      MenuActionLeft,
	"h":      MenuActionLeft,
	"right":  MenuActionRight,
	"d":      MenuActionRight,
	"l":      MenuActionRight,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
	"tab":    MenuActionScoreboard,
}

// KeyMapper translates Bubble Tea key and mouse messages into actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the game action for msg, or ActionNone when it is unbound.
// isQuit is set for Q and Ctrl+C.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = gameKeys[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame sets the bound action on frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records the pointer cell of motion and press events.
// Releases and wheel events are ignored.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	ev := tea.MouseEvent(msg)
	if ev.IsWheel() {
		return
	}
	if ev.Action == tea.MouseActionMotion || ev.Action == tea.MouseActionPress {
		frame.SetPointer(ev.X, ev.Y)
	}
}

// MapKeyToMenuAction returns the menu action for msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}

package ui

import (
	"github.com/gdamore/tcell/v2"

	"termtris-local/types"
)

// Action is a session-level key binding that is not a board command.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
	ActionToggleAuto
	ActionQuit
)

// KeyCommand maps a key to a board command, or CmdNone.
func KeyCommand(event *tcell.EventKey) types.Command {
	switch event.Key() {
	case tcell.KeyLeft:
		return types.CmdLeft
	case tcell.KeyRight:
		return types.CmdRight
	case tcell.KeyUp:
		return types.CmdTransform
	case tcell.KeyDown:
		return types.CmdFastForward
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h', 'a':
			return types.CmdLeft
		case 'l', 'd':
			return types.CmdRight
		case 'k', 'w':
			return types.CmdTransform
		case 'j', 's':
			return types.CmdFastForward
		case ' ':
			return types.CmdDrop
		}
	}
	return types.CmdNone
}

// KeyAction maps a key to a session action, or ActionNone.
func KeyAction(event *tcell.EventKey) Action {
	switch event.Key() {
	case tcell.KeyEsc:
		return ActionPause
	case tcell.KeyRune:
		switch event.Rune() {
		case 'p':
			return ActionPause
		case 'r':
			return ActionRestart
		case 't':
			return ActionToggleAuto
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}

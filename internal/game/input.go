package game

import "github.com/gdamore/tcell/v2"

// Action represents a viewer-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionScrollUp
	ActionScrollDown
	ActionTop
	ActionBottom
	ActionQuit
)

// keyToAction maps a tcell key event to a viewer action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionScrollUp
	case tcell.KeyDown:
		return ActionScrollDown
	case tcell.KeyHome:
		return ActionTop
	case tcell.KeyEnd:
		return ActionBottom
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return ActionScrollUp
		case 'j':
			return ActionScrollDown
		case 'g':
			return ActionTop
		case 'G':
			return ActionBottom
		case 'q', 'Q':
			return ActionQuit
		}
	}
	return ActionNone
}

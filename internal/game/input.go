package game

import "github.com/gdamore/tcell/v2"

// IntentForKey maps a key event to an intent.
func IntentForKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return IntentUp
	case tcell.KeyDown:
		return IntentDown
	case tcell.KeyLeft:
		return IntentLeft
	case tcell.KeyRight:
		return IntentRight
	case tcell.KeyEnter:
		return IntentConfirm
	case tcell.KeyEscape:
		return IntentCancel
	case tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return IntentUp
		case 'j':
			return IntentDown
		case 'h':
			return IntentLeft
		case 'l':
			return IntentRight
		case ' ', 'e':
			return IntentActivate
		case 'q', 'Q':
			return IntentQuit
		}
	}
	return IntentNone
}

// hold keeps directional input alive between key presses. Terminals report
// presses but not releases, so each press drives its axis for a fixed number
// of ticks. A press on one axis replaces that axis only.
type hold struct {
	x, y axisHold
}

type axisHold struct {
	dir   int
	ticks int
}

func (h *hold) press(dx, dy, ticks int) {
	if dx != 0 {
		h.x = axisHold{dir: dx, ticks: ticks}
	}
	if dy != 0 {
		h.y = axisHold{dir: dy, ticks: ticks}
	}
}

// next consumes one tick and returns the held direction.
func (h *hold) next() (dx, dy int) {
	return h.x.next(), h.y.next()
}

func (h *hold) clear() {
	*h = hold{}
}

func (a *axisHold) next() int {
	if a.ticks <= 0 {
		return 0
	}
	a.ticks--
	return a.dir
}

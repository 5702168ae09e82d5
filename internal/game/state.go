// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateMenu shows the title menu.
	StateMenu State = iota
	// StatePlaying runs the simulation once per tick.
	StatePlaying
	// StateQuit is terminal; the loop exits.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent is an abstract input, decoupled from the device that produced it.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentActivate
	IntentConfirm
	IntentCancel
	IntentQuit
)

// String returns a human-readable intent name.
func (in Intent) String() string {
	switch in {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentActivate:
		return "activate"
	case IntentConfirm:
		return "confirm"
	case IntentCancel:
		return "cancel"
	case IntentQuit:
		return "quit"
	default:
		return "none"
	}
}

// Delta returns the unit direction of a directional intent, or (0, 0).
func (in Intent) Delta() (dx, dy int) {
	switch in {
	case IntentUp:
		return 0, -1
	case IntentDown:
		return 0, 1
	case IntentLeft:
		return -1, 0
	case IntentRight:
		return 1, 0
	}
	return 0, 0
}

// MenuItem is an entry of the title menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuQuit
)

// MenuItems lists the title menu entries in display order.
var MenuItems = []MenuItem{MenuStart, MenuQuit}

// String returns the menu label.
func (m MenuItem) String() string {
	switch m {
	case MenuStart:
		return "Start"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

// MenuLabels returns the labels of MenuItems.
func MenuLabels() []string {
	labels := make([]string, len(MenuItems))
	for i, m := range MenuItems {
		labels[i] = m.String()
	}
	return labels
}

// Effect tells the loop what to do with the simulation after an intent.
type Effect int

const (
	EffectNone Effect = iota
	EffectMove
	EffectActivate
)

// Machine is the top-level Menu/Playing/Quit state machine.
type Machine struct {
	State    State
	Selected MenuItem
}

// NewMachine returns a machine on the title menu with Start selected.
func NewMachine() *Machine {
	return &Machine{State: StateMenu, Selected: MenuStart}
}

// Handle applies one intent and returns the effect the loop should carry out.
func (m *Machine) Handle(in Intent) Effect {
	switch m.State {
	case StateMenu:
		n := MenuItem(len(MenuItems))
		switch in {
		case IntentUp:
			m.Selected = (m.Selected + n - 1) % n
		case IntentDown:
			m.Selected = (m.Selected + 1) % n
		case IntentConfirm:
			if m.Selected == MenuStart {
				m.State = StatePlaying
			} else {
				m.State = StateQuit
			}
		case IntentCancel, IntentQuit:
			m.State = StateQuit
		}

	case StatePlaying:
		switch in {
		case IntentCancel, IntentQuit:
			m.State = StateMenu
		case IntentUp, IntentDown, IntentLeft, IntentRight:
			return EffectMove
		case IntentActivate:
			return EffectActivate
		}
	}
	return EffectNone
}

// Hover selects menu item i from pointer input. It reports whether the
// selection applied.
func (m *Machine) Hover(i int) bool {
	if m.State != StateMenu || i < 0 || i >= len(MenuItems) {
		return false
	}
	m.Selected = MenuItems[i]
	return true
}

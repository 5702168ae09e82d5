package game

import "testing"

func TestMachineMenu(t *testing.T) {
	tests := []struct {
		name     string
		intents  []Intent
		want     State
		selected MenuItem
	}{
		{"start", []Intent{IntentConfirm}, StatePlaying, MenuStart},
		{"down then confirm quits", []Intent{IntentDown, IntentConfirm}, StateQuit, MenuQuit},
		{"up wraps", []Intent{IntentUp}, StateMenu, MenuQuit},
		{"down wraps", []Intent{IntentDown, IntentDown}, StateMenu, MenuStart},
		{"cancel quits", []Intent{IntentCancel}, StateQuit, MenuStart},
		{"quit quits", []Intent{IntentQuit}, StateQuit, MenuStart},
		{"activate ignored", []Intent{IntentActivate, IntentLeft}, StateMenu, MenuStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, in := range tt.intents {
				if eff := m.Handle(in); eff != EffectNone {
					t.Errorf("Handle(%v) in menu = %v, want EffectNone", in, eff)
				}
			}
			if m.State != tt.want {
				t.Errorf("State = %v, want %v", m.State, tt.want)
			}
			if m.Selected != tt.selected {
				t.Errorf("Selected = %v, want %v", m.Selected, tt.selected)
			}
		})
	}
}

func TestMachinePlaying(t *testing.T) {
	tests := []struct {
		in     Intent
		effect Effect
		state  State
	}{
		{IntentUp, EffectMove, StatePlaying},
		{IntentDown, EffectMove, StatePlaying},
		{IntentLeft, EffectMove, StatePlaying},
		{IntentRight, EffectMove, StatePlaying},
		{IntentActivate, EffectActivate, StatePlaying},
		{IntentConfirm, EffectNone, StatePlaying},
		{IntentCancel, EffectNone, StateMenu},
		{IntentQuit, EffectNone, StateMenu},
	}

	for _, tt := range tests {
		m := &Machine{State: StatePlaying}
		if eff := m.Handle(tt.in); eff != tt.effect {
			t.Errorf("Handle(%v) = %v, want %v", tt.in, eff, tt.effect)
		}
		if m.State != tt.state {
			t.Errorf("after %v State = %v, want %v", tt.in, m.State, tt.state)
		}
	}
}

func TestMachineQuitIsTerminal(t *testing.T) {
	m := &Machine{State: StateQuit}
	for _, in := range []Intent{IntentConfirm, IntentCancel, IntentUp, IntentActivate} {
		if eff := m.Handle(in); eff != EffectNone || m.State != StateQuit {
			t.Errorf("Handle(%v) from quit = (%v, %v), want (EffectNone, quit)", in, eff, m.State)
		}
	}
	if m.Hover(0) {
		t.Error("Hover should not apply outside the menu")
	}
}

func TestMachineHover(t *testing.T) {
	m := NewMachine()

	if !m.Hover(1) || m.Selected != MenuQuit {
		t.Errorf("Hover(1) selected %v, want Quit", m.Selected)
	}
	if m.Hover(-1) || m.Hover(len(MenuItems)) {
		t.Error("Hover out of range should not apply")
	}
	if m.Selected != MenuQuit {
		t.Errorf("Selected = %v after invalid hover, want Quit", m.Selected)
	}
}

func TestIntentDelta(t *testing.T) {
	tests := []struct {
		in     Intent
		dx, dy int
	}{
		{IntentUp, 0, -1},
		{IntentDown, 0, 1},
		{IntentLeft, -1, 0},
		{IntentRight, 1, 0},
		{IntentActivate, 0, 0},
	}
	for _, tt := range tests {
		if dx, dy := tt.in.Delta(); dx != tt.dx || dy != tt.dy {
			t.Errorf("%v.Delta() = (%d, %d), want (%d, %d)", tt.in, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestStrings(t *testing.T) {
	if StatePlaying.String() != "playing" || State(42).String() != "unknown" {
		t.Error("State.String mismatch")
	}
	if got := MenuLabels(); len(got) != 2 || got[0] != "Start" || got[1] != "Quit" {
		t.Errorf("MenuLabels() = %v", got)
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-laze/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		want   []core.Action
		isQuit bool
	}{
		{runeKey("w"), []core.Action{core.ActionForward}, false},
		{runeKey("W"), []core.Action{core.ActionForward, core.ActionRun}, false},
		{tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionForward}, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionTurnLeft}, false},
		{tea.KeyMsg{Type: tea.KeyTab}, []core.Action{core.ActionMap}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionPause}, false},
		{runeKey("q"), []core.Action{core.ActionQuit}, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}, true},
		{runeKey("z"), nil, false},
	}

	for _, tt := range tests {
		got, isQuit := km.MapKey(tt.msg)
		if isQuit != tt.isQuit {
			t.Errorf("MapKey(%q) isQuit = %v, expected %v", tt.msg.String(), isQuit, tt.isQuit)
		}
		if len(got) != len(tt.want) {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
				break
			}
		}
	}
}

func TestKeyMapperHoldDecay(t *testing.T) {
	km := NewKeyMapperWithHold(3)
	frame := core.NewInputFrame()

	km.Press(runeKey("w"), &frame)
	if frame.Has(core.ActionForward) {
		t.Error("held actions should reach the frame through Apply")
	}

	for tick := 1; tick <= 3; tick++ {
		frame.Clear()
		km.Apply(&frame)
		if !frame.Has(core.ActionForward) {
			t.Errorf("tick %d: Forward not held", tick)
		}
	}

	frame.Clear()
	km.Apply(&frame)
	if frame.Has(core.ActionForward) {
		t.Error("Forward should decay after the hold window")
	}
}

func TestKeyMapperRepeatRefreshesHold(t *testing.T) {
	km := NewKeyMapperWithHold(2)
	frame := core.NewInputFrame()

	km.Press(runeKey("d"), &frame)
	km.Apply(&frame)
	km.Press(runeKey("d"), &frame) // auto-repeat
	km.Apply(&frame)
	km.Apply(&frame)

	if km.Held(core.ActionStrafeRight) {
		t.Error("hold should have expired two ticks after the last press")
	}

	km.Press(runeKey("d"), &frame)
	if !km.Held(core.ActionStrafeRight) {
		t.Error("press should start a new hold")
	}
}

func TestKeyMapperOppositeCancels(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.Press(runeKey("w"), &frame)
	km.Press(runeKey("s"), &frame)

	km.Apply(&frame)
	if frame.Has(core.ActionForward) {
		t.Error("Backward should cancel a held Forward")
	}
	if !frame.Has(core.ActionBackward) {
		t.Error("Backward not held")
	}
}

func TestKeyMapperOneShot(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.Press(runeKey("p"), &frame)
	km.Press(runeKey(" "), &frame)
	if !frame.Has(core.ActionPause) || !frame.Has(core.ActionJump) {
		t.Error("toggles should be set on the frame directly")
	}
	if km.Held(core.ActionPause) || km.Held(core.ActionJump) {
		t.Error("toggles should not be held")
	}

	km.Press(runeKey("W"), &frame)
	km.Release()
	frame.Clear()
	km.Apply(&frame)
	if frame.Has(core.ActionForward) || frame.Has(core.ActionRun) {
		t.Error("Release should drop every hold")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("b"), MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

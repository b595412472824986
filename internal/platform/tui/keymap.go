package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-laze/internal/core"
)

// DefaultHoldTicks is how many ticks a movement key stays active after its
// last press. Terminals only report presses and auto-repeat, so a held key
// arrives as a stream of presses with gaps between them.
const DefaultHoldTicks = 8

// gameKeys maps key strings to the actions they trigger. Uppercase letters
// and shifted arrows add ActionRun.
var gameKeys = map[string][]core.Action{
	"w":          {core.ActionForward},
	"up":         {core.ActionForward},
	"W":          {core.ActionForward, core.ActionRun},
	"shift+up":   {core.ActionForward, core.ActionRun},
	"s":          {core.ActionBackward},
	"down":       {core.ActionBackward},
	"S":          {core.ActionBackward, core.ActionRun},
	"shift+down": {core.ActionBackward, core.ActionRun},
	"a":          {core.ActionStrafeLeft},
	"A":          {core.ActionStrafeLeft, core.ActionRun},
	"d":          {core.ActionStrafeRight},
	"D":          {core.ActionStrafeRight, core.ActionRun},
	"left":       {core.ActionTurnLeft},
	"h":          {core.ActionTurnLeft},
	"right":      {core.ActionTurnRight},
	"l":          {core.ActionTurnRight},
	"k":          {core.ActionLookUp},
	"pgup":       {core.ActionLookUp},
	"j":          {core.ActionLookDown},
	"pgdown":     {core.ActionLookDown},
	" ":          {core.ActionJump},
	"tab":        {core.ActionMap},
	"m":          {core.ActionMap},
	"f":          {core.ActionHint},
	"p":          {core.ActionPause},
	"esc":        {core.ActionPause},
	"g":          {core.ActionGiveUp},
	"r":          {core.ActionRestart},
	"b":          {core.ActionBack},
	"enter":      {core.ActionConfirm},
	"q":          {core.ActionQuit},
	"ctrl+c":     {core.ActionQuit},
}

// opposite pairs cancel each other so reversing does not wait for the old
// hold to run out.
var opposite = map[core.Action]core.Action{
	core.ActionForward:     core.ActionBackward,
	core.ActionBackward:    core.ActionForward,
	core.ActionStrafeLeft:  core.ActionStrafeRight,
	core.ActionStrafeRight: core.ActionStrafeLeft,
	core.ActionTurnLeft:    core.ActionTurnRight,
	core.ActionTurnRight:   core.ActionTurnLeft,
	core.ActionLookUp:      core.ActionLookDown,
	core.ActionLookDown:    core.ActionLookUp,
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Continuous actions are held for a few ticks after each press; toggles
// fire once.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWithHold(DefaultHoldTicks)
}

// NewKeyMapperWithHold creates a key mapper that keeps movement keys active
// for ticks ticks after each press.
func NewKeyMapperWithHold(ticks int) *KeyMapper {
	return &KeyMapper{
		holdTicks: max(ticks, 1),
		held:      make(map[core.Action]int),
	}
}

// MapKey returns the actions bound to a key and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	actions = gameKeys[msg.String()]
	for _, a := range actions {
		if a == core.ActionQuit {
			return actions, true
		}
	}
	return actions, false
}

// Press records a key press. One-shot actions go straight into frame;
// continuous ones start or refresh their hold. Returns true if the key was
// a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		if !a.IsHeld() {
			frame.Set(a)
			continue
		}
		if o, ok := opposite[a]; ok {
			delete(km.held, o)
		}
		km.held[a] = km.holdTicks
	}
	return isQuit
}

// Apply adds every held action to frame and counts the holds down by one
// tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.Set(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
}

// Release drops all holds.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// Held reports whether a is currently held.
func (km *KeyMapper) Held(a core.Action) bool {
	return km.held[a] > 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W, Up arrow
	ActionBackward           // S, Down arrow
	ActionStrafeLeft         // A
	ActionStrafeRight        // D
	ActionTurnLeft           // Left arrow, H
	ActionTurnRight          // Right arrow, L
	ActionLookUp             // K, PgUp
	ActionLookDown           // J, PgDown
	ActionRun                // Shift+movement
	ActionJump               // Space
	ActionMap                // Tab, M - toggle minimap
	ActionHint               // F - toggle route hint on the minimap
	ActionConfirm            // Enter
	ActionBack               // B - back to menu
	ActionRestart            // R - new run after game over
	ActionQuit               // Q, Ctrl+C
	ActionPause              // P, Escape
	ActionGiveUp             // G while paused - end the run
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionForward:     "Forward",
	ActionBackward:    "Backward",
	ActionStrafeLeft:  "StrafeLeft",
	ActionStrafeRight: "StrafeRight",
	ActionTurnLeft:    "TurnLeft",
	ActionTurnRight:   "TurnRight",
	ActionLookUp:      "LookUp",
	ActionLookDown:    "LookDown",
	ActionRun:         "Run",
	ActionJump:        "Jump",
	ActionMap:         "Map",
	ActionHint:        "Hint",
	ActionConfirm:     "Confirm",
	ActionBack:        "Back",
	ActionRestart:     "Restart",
	ActionQuit:        "Quit",
	ActionPause:       "Pause",
	ActionGiveUp:      "GiveUp",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsHeld reports whether the action describes a continuous intent (moving,
// turning, looking) rather than a one-shot toggle.
func (a Action) IsHeld() bool {
	switch a {
	case ActionForward, ActionBackward, ActionStrafeLeft, ActionStrafeRight,
		ActionTurnLeft, ActionTurnRight, ActionLookUp, ActionLookDown, ActionRun:
		return true
	}
	return false
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Axis returns +1 when only pos is active, -1 when only neg is, 0 otherwise.
func (f InputFrame) Axis(pos, neg Action) float64 {
	v := 0.0
	if f.Has(pos) {
		v++
	}
	if f.Has(neg) {
		v--
	}
	return v
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

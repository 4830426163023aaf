package core

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionFire
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions active during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear removes all actions so the frame can be reused.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// DefaultHoldTicks keeps a key held between terminal auto-repeat events.
const DefaultHoldTicks = 8

// HoldTracker emulates held keys on terminals, which report presses and
// auto-repeats but never releases. A press keeps its action active for
// holdTicks ticks after the most recent press.
type HoldTracker struct {
	holdTicks int
	until     map[Action]int
}

// NewHoldTracker creates a tracker. Non-positive holdTicks uses DefaultHoldTicks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		until:     make(map[Action]int),
	}
}

// Press records a key press at the given tick.
// Pressing one direction releases the opposite one immediately.
func (h *HoldTracker) Press(a Action, tick int) {
	switch a {
	case ActionLeft:
		delete(h.until, ActionRight)
	case ActionRight:
		delete(h.until, ActionLeft)
	}
	h.until[a] = tick + h.holdTicks
}

// Release drops an action before its hold window ends.
func (h *HoldTracker) Release(a Action) {
	delete(h.until, a)
}

// Apply sets every action still held at tick into the frame and forgets the
// ones whose window has passed.
func (h *HoldTracker) Apply(frame *InputFrame, tick int) {
	for a, until := range h.until {
		if tick >= until {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	for a := range h.until {
		delete(h.until, a)
	}
}

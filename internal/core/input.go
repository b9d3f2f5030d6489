package core

// Action is a semantic input, independent of the key or button behind it.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionFire
	ActionConfirm // start a wave, resume after a lost life
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionFire:    "Fire",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions held or pressed during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame returns a frame with the given actions set.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

func (f InputFrame) Has(a Action) bool { return f.Actions[a] }

// Clear empties the frame, keeping its map for reuse.
func (f *InputFrame) Clear() { clear(f.Actions) }

func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for a, on := range f.Actions {
		c.Actions[a] = on
	}
	return c
}

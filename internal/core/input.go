package core

// Action is a board command decoupled from the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionCancel         // any unbound key: drop the path being drawn
	ActionRestart        // back to the first level
	ActionQuit
)

var actionNames = [...]string{"None", "Cancel", "Restart", "Quit"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// Pointer is a mouse position in screen cells.
// Valid is false until the terminal has reported a position.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame is the input gathered between two ticks.
// Pointer is level-triggered and survives Clear; Pressed, PressedAt and the
// actions are edge-triggered. PressedAt keeps the press position even when
// motion arrives before the tick.
type InputFrame struct {
	Pointer   Pointer
	Pressed   bool
	PressedAt Pointer

	actions uint8
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= 8 {
		return
	}
	f.actions |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < 8 && f.actions&(1<<a) != 0
}

// MovePointer records the latest pointer position.
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
}

// Press records a primary button press at (x, y).
func (f *InputFrame) Press(x, y int) {
	f.MovePointer(x, y)
	f.Pressed = true
	f.PressedAt = f.Pointer
}

// Clear drops the edge-triggered input and keeps the pointer.
func (f *InputFrame) Clear() {
	f.actions = 0
	f.Pressed = false
	f.PressedAt = Pointer{}
}

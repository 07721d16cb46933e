// Package calc implements the calculator reducer: a pure state machine that turns
// keypad events into the next display state.
//
// The package has no I/O and no globals beyond immutable tables, so it can be
// driven from the framebuffer task, the tape tool, and tests alike.
package calc

// Op is a pending binary operation.
type Op uint8

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	default:
		return ""
	}
}

// State is the calculator state. It is a value: every event produces a new one.
//
// Previous is meaningful only while Op != OpNone; the two are set and cleared together.
type State struct {
	Display      string
	Previous     float64
	Op           Op
	PendingReset bool
}

// Initial returns the session start state.
func Initial() State {
	return State{Display: "0"}
}

// Pending reports whether a left operand and operation are captured.
func (s State) Pending() bool { return s.Op != OpNone }

// Value returns the numeric value of the display.
func (s State) Value() float64 { return Parse(s.Display) }

package calc

import "fmt"

// EventKind tags an Event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventDigit
	EventDecimal
	EventOperator
	EventEquals
	EventClear
	EventToggleSign
	EventPercent
)

// Event is one discrete keypad input.
//
// Digit is set for EventDigit ('0'..'9'), Op for EventOperator.
type Event struct {
	Kind  EventKind
	Digit byte
	Op    Op
}

func Digit(d byte) Event   { return Event{Kind: EventDigit, Digit: d} }
func Decimal() Event       { return Event{Kind: EventDecimal} }
func Operator(op Op) Event { return Event{Kind: EventOperator, Op: op} }
func Equals() Event        { return Event{Kind: EventEquals} }
func Clear() Event         { return Event{Kind: EventClear} }
func ToggleSign() Event    { return Event{Kind: EventToggleSign} }
func Percent() Event       { return Event{Kind: EventPercent} }

func (e Event) String() string {
	switch e.Kind {
	case EventDigit:
		return string(rune(e.Digit))
	case EventDecimal:
		return "."
	case EventOperator:
		return e.Op.String()
	case EventEquals:
		return "="
	case EventClear:
		return "AC"
	case EventToggleSign:
		return "±"
	case EventPercent:
		return "%"
	default:
		return fmt.Sprintf("event(%d)", e.Kind)
	}
}

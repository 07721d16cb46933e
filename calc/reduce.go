package calc

import "strings"

// Reducer applies events to states.
//
// MaxDigits caps how many digits can be typed into one operand. Zero leaves entry
// unbounded, which is the default behavior.
type Reducer struct {
	MaxDigits int
}

// Apply returns the state after ev using an unbounded Reducer.
func Apply(s State, ev Event) State {
	return Reducer{}.Apply(s, ev)
}

// Apply returns the state after ev. s is not modified.
func (r Reducer) Apply(s State, ev Event) State {
	switch ev.Kind {
	case EventDigit:
		return r.digit(s, ev.Digit)
	case EventDecimal:
		return decimal(s)
	case EventOperator:
		return operator(s, ev.Op)
	case EventEquals:
		return equals(s)
	case EventClear:
		return Initial()
	case EventToggleSign:
		s.Display = Format(-s.Value())
		return s
	case EventPercent:
		s.Display = Format(s.Value() / 100)
		return s
	default:
		return s
	}
}

func (r Reducer) digit(s State, d byte) State {
	if d < '0' || d > '9' {
		return s
	}
	switch {
	case s.PendingReset:
		s.Display = string(d)
		s.PendingReset = false
	case s.Display == "0":
		s.Display = string(d)
	default:
		if r.MaxDigits > 0 && countDigits(s.Display) >= r.MaxDigits {
			return s
		}
		s.Display += string(d)
	}
	return s
}

func decimal(s State) State {
	switch {
	case s.PendingReset:
		s.Display = "0."
		s.PendingReset = false
	case strings.Contains(s.Display, "."):
	default:
		s.Display += "."
	}
	return s
}

func operator(s State, op Op) State {
	if op == OpNone {
		return s
	}
	current := s.Value()
	if s.Pending() && !s.PendingReset {
		result := Evaluate(s.Previous, current, s.Op)
		s.Display = Format(result)
		s.Previous = result
	} else {
		s.Previous = current
	}
	s.Op = op
	s.PendingReset = true
	return s
}

func equals(s State) State {
	if !s.Pending() {
		return s
	}
	result := Evaluate(s.Previous, s.Value(), s.Op)
	s.Display = Format(result)
	s.Previous = 0
	s.Op = OpNone
	s.PendingReset = true
	return s
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}

package calc

import (
	"errors"
	"fmt"
	"unicode"
)

// Variant is a button styling category.
type Variant uint8

const (
	VariantNumber Variant = iota
	VariantOperation
	VariantSpecial
	VariantEquals
)

func (v Variant) String() string {
	switch v {
	case VariantNumber:
		return "number"
	case VariantOperation:
		return "operation"
	case VariantSpecial:
		return "special"
	case VariantEquals:
		return "equals"
	default:
		return "unknown"
	}
}

// Key is one keypad button.
type Key struct {
	Label   string
	Event   Event
	Variant Variant
	Wide    bool // spans two columns
}

// ErrUnknownKey is returned when a rune has no keypad binding.
var ErrUnknownKey = errors.New("unknown key")

func digitKey(d byte) Key {
	return Key{Label: string(rune(d)), Event: Digit(d), Variant: VariantNumber}
}

// Keypad is the button grid, top row first.
var Keypad = [][]Key{
	{
		{Label: "AC", Event: Clear(), Variant: VariantSpecial},
		{Label: "±", Event: ToggleSign(), Variant: VariantSpecial},
		{Label: "%", Event: Percent(), Variant: VariantSpecial},
		{Label: "÷", Event: Operator(OpDiv), Variant: VariantOperation},
	},
	{digitKey('7'), digitKey('8'), digitKey('9'), {Label: "×", Event: Operator(OpMul), Variant: VariantOperation}},
	{digitKey('4'), digitKey('5'), digitKey('6'), {Label: "-", Event: Operator(OpSub), Variant: VariantOperation}},
	{digitKey('1'), digitKey('2'), digitKey('3'), {Label: "+", Event: Operator(OpAdd), Variant: VariantOperation}},
	{
		{Label: "0", Event: Digit('0'), Variant: VariantNumber, Wide: true},
		{Label: ".", Event: Decimal(), Variant: VariantNumber},
		{Label: "=", Event: Equals(), Variant: VariantEquals},
	},
}

// KeyByLabel finds a keypad button by its label.
func KeyByLabel(label string) (Key, bool) {
	for _, row := range Keypad {
		for _, k := range row {
			if k.Label == label {
				return k, true
			}
		}
	}
	return Key{}, false
}

// KeyForRune maps a typed character to its keypad button.
//
// Besides the labels themselves: '*' and 'x' multiply, '/' divides, ',' is the
// decimal point, 'c' clears and 'n' toggles the sign.
func KeyForRune(r rune) (Key, bool) {
	label := ""
	switch {
	case r >= '0' && r <= '9':
		label = string(r)
	case r == '.' || r == ',':
		label = "."
	case r == '+':
		label = "+"
	case r == '-' || r == '−':
		label = "-"
	case r == '*' || r == 'x' || r == 'X' || r == '×':
		label = "×"
	case r == '/' || r == '÷':
		label = "÷"
	case r == '=':
		label = "="
	case r == '%':
		label = "%"
	case r == 'c' || r == 'C':
		label = "AC"
	case r == 'n' || r == 'N' || r == '±':
		label = "±"
	default:
		return Key{}, false
	}
	return KeyByLabel(label)
}

// ParseScript maps every non-space rune of s to a key, e.g. "9+1=".
func ParseScript(s string) ([]Key, error) {
	var keys []Key
	pos := 0
	for _, r := range s {
		pos++
		if unicode.IsSpace(r) {
			continue
		}
		k, ok := KeyForRune(r)
		if !ok {
			return nil, fmt.Errorf("script position %d %q: %w", pos, r, ErrUnknownKey)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

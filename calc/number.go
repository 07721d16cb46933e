package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Evaluate applies op with IEEE-754 float64 semantics. Division by zero yields
// ±Inf or NaN. OpNone returns b.
func Evaluate(a, b float64, op Op) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	default:
		return b
	}
}

// numericPrefix matches the longest leading decimal literal, the way a lenient
// float parser reads "12.", ".5", "1e+21" or "-Infinity".
var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// Parse reads the leading numeric prefix of s. Anything unparsable is NaN.
// Out of range literals saturate to ±Inf.
func Parse(s string) float64 {
	m := numericPrefix.FindString(strings.TrimLeft(s, " \t\r\n"))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// Format renders n as its shortest round-trip decimal string.
//
// Layout follows the ECMAScript Number-to-String rules: plain notation for
// magnitudes in [1e-6, 1e21), exponential ("1e+21", "1.5e-7") outside. Negative zero
// prints as "0"; non-finite values print as "NaN", "Infinity", "-Infinity".
func Format(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	var b strings.Builder
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}

	// "d.ddde±xx" carries the shortest digits and the exponent.
	sci := strconv.FormatFloat(n, 'e', -1, 64)
	i := strings.IndexByte(sci, 'e')
	digits := strings.Replace(sci[:i], ".", "", 1)
	exp, _ := strconv.Atoi(sci[i+1:])

	k := len(digits)
	point := exp + 1 // digits are 0.d1d2...dk × 10^point
	switch {
	case k <= point && point <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", point-k))
	case 0 < point && point <= 21:
		b.WriteString(digits[:point])
		b.WriteByte('.')
		b.WriteString(digits[point:])
	case -6 < point && point <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -point))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if exp >= 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
			exp = -exp
		}
		b.WriteString(strconv.Itoa(exp))
	}
	return b.String()
}

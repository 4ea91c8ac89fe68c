package interval

import (
	"math"
	"strconv"
	"strings"
)

// String renders i as "∅" or as "[a, b]", "(a, b)", "[a, b)", "(a, b]".
// Bounds always carry a fractional part or an exponent: 1.0, 0.5, 1.0E7,
// 1.0E-4, Infinity, -Infinity.
func (i Interval) String() string {

	if !i.bounded {
		return "∅"
	}

	var sb strings.Builder

	if i.lowerType == BoundTypeClosed {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}

	sb.WriteString(formatBound(i.lower))
	sb.WriteString(", ")
	sb.WriteString(formatBound(i.upper))

	if i.upperType == BoundTypeClosed {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}

	return sb.String()
}

// formatBound writes x with the shortest digits that round-trip, in plain
// notation for 1e-3 <= |x| < 1e7 and in d.dddEn notation otherwise.
func formatBound(x float64) string {

	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}

	var sign string
	if x < 0 {
		sign, x = "-", -x
	}

	mantissa, exp := splitExponent(strconv.FormatFloat(x, 'e', -1, 64))
	digits := strings.Replace(mantissa, ".", "", 1)

	if x < 1e-3 || x >= 1e7 {
		frac := digits[1:]
		if frac == "" {
			frac = "0"
		}
		return sign + digits[:1] + "." + frac + "E" + strconv.Itoa(exp)
	}

	if exp < 0 {
		return sign + "0." + strings.Repeat("0", -exp-1) + digits
	}

	if len(digits) <= exp+1 {
		return sign + digits + strings.Repeat("0", exp+1-len(digits)) + ".0"
	}

	return sign + digits[:exp+1] + "." + digits[exp+1:]
}

// splitExponent splits "d.dddde±XX", as written by strconv.FormatFloat with
// the 'e' format, into its mantissa and its decimal exponent.
func splitExponent(s string) (mantissa string, exp int) {
	mantissa, exponent, _ := strings.Cut(s, "e")
	for _, c := range exponent[1:] {
		exp = exp*10 + int(c-'0')
	}
	if exponent[0] == '-' {
		exp = -exp
	}
	return mantissa, exp
}

package linear

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// String renders f as "ax + b = 0" with two decimals.
// Coefficients are rounded half away from zero on their shortest decimal
// form, so 0.125 renders as 0.13 and 1.005 as 1.01.
func (f Function) String() string {
	return formatCoefficient(f.a) + "x + " + formatCoefficient(f.b) + " = 0"
}

// formatCoefficient writes x with two decimals. Non-finite values keep the
// fmt spelling (+Inf, -Inf, NaN) and a negative x keeps its sign even when
// it rounds to zero.
func formatCoefficient(x float64) string {

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprintf("%.2f", x)
	}

	s := decimal.NewFromFloat(x).StringFixed(2)

	if math.Signbit(x) && !strings.HasPrefix(s, "-") {
		return "-" + s
	}

	return s
}

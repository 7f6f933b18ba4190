package regression

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Coefficients is a fitted polynomial, constant term first: c[k] multiplies x^k.
//
// Values returned by Fit are owned by the caller; the package never modifies them.
type Coefficients []float64

// Degree returns the polynomial degree, or -1 for an empty vector.
func (c Coefficients) Degree() int {
	return len(c) - 1
}

// Clone returns a copy that shares no memory with c.
func (c Coefficients) Clone() Coefficients {
	if c == nil {
		return nil
	}

	return slices.Clone(c)
}

// Predict evaluates the polynomial at x.
func (c Coefficients) Predict(x float64) float64 {
	return Predict(c, x)
}

// PredictBatch evaluates the polynomial at every element of xs.
func (c Coefficients) PredictBatch(xs []float64) []float64 {
	return PredictBatch(c, xs)
}

// Formula renders the polynomial with the given variable names, for example
// "V = 2.67016 + 8.56372e-05*T + 2.81805e-05*T^2".
func (c Coefficients) Formula(xName, yName string) string {
	var sb strings.Builder
	sb.WriteString(yName)
	sb.WriteString(" = ")
	if len(c) == 0 {
		sb.WriteString("0")
		return sb.String()
	}

	for k, a := range c {
		if k == 0 {
			sb.WriteString(formatFloat(a))
		} else {
			if math.Signbit(a) {
				sb.WriteString(" - ")
				a = -a
			} else {
				sb.WriteString(" + ")
			}
			sb.WriteString(formatFloat(a))
			sb.WriteString("*")
			sb.WriteString(xName)
			if k > 1 {
				sb.WriteString("^")
				sb.WriteString(strconv.Itoa(k))
			}
		}
	}

	return sb.String()
}

// String renders the polynomial in terms of x and y.
func (c Coefficients) String() string {
	return c.Formula("x", "y")
}

// Predict evaluates Σ coeffs[k]·x^k using Horner's rule. Any real x is accepted;
// extrapolation outside the fitted range is not checked. An empty vector yields 0.
func Predict(coeffs Coefficients, x float64) float64 {
	var y float64
	for k := len(coeffs) - 1; k >= 0; k-- {
		y = y*x + coeffs[k]
	}

	return y
}

// PredictBatch applies Predict to each element of xs. The result has the same
// length and order as xs.
func PredictBatch(coeffs Coefficients, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = Predict(coeffs, x)
	}

	return ys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

var _ fmt.Stringer = Coefficients(nil)

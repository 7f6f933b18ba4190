package regression

import "gonum.org/v1/gonum/mat"

// DesignMatrix builds the len(xs)×(degree+1) Vandermonde matrix whose column j
// holds x^j. Column 0 is all ones. Powers are accumulated by repeated
// multiplication, so row i is exactly {1, x, x·x, …}.
//
// xs must be non-empty and degree must be >= 0; mat.NewDense panics on a zero dimension.
func DesignMatrix(xs []float64, degree int) *mat.Dense {
	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*x {
			a.Set(i, j, p)
		}
	}

	return a
}

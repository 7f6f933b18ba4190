package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/calfit/errs"
)

// ResidualReport describes how well a polynomial reproduces a dataset.
//
// All per-sample slices are aligned with the evaluated dataset. A residual is
// actual minus predicted.
type ResidualReport struct {
	// X holds the independent values that were evaluated.
	X []float64 `json:"x"`
	// Actual holds the observed dependent values.
	Actual []float64 `json:"actual"`
	// Predicted holds the polynomial evaluated at each X.
	Predicted []float64 `json:"predicted"`
	// Residuals holds Actual[i] - Predicted[i].
	Residuals []float64 `json:"residuals"`
	// AbsoluteErrors holds |Residuals[i]|.
	AbsoluteErrors []float64 `json:"absolute_errors"`
	// PercentageErrors holds |Residuals[i]| / |Actual[i]| · 100.
	// It is 0 when both are zero and +Inf when only Actual[i] is zero.
	PercentageErrors []float64 `json:"-"`

	// MSE is the mean of the squared residuals.
	MSE float64 `json:"mse"`
	// RMSE is the square root of MSE.
	RMSE float64 `json:"rmse"`
	// MaxAbsError is the largest absolute residual.
	MaxAbsError float64 `json:"max_abs_error"`
	// RSquared is the coefficient of determination, 0 when Actual has no variance.
	RSquared float64 `json:"r_squared"`
}

// EvaluateResiduals computes the residual report of coeffs over samples.
//
// It returns errs.ErrEmptyDataset when samples is empty. MSE is always >= 0 and
// is zero exactly when every residual is zero. The coefficients and samples are
// not modified.
func EvaluateResiduals(coeffs Coefficients, samples Dataset) (*ResidualReport, error) {
	n := len(samples)
	if n == 0 {
		return nil, fmt.Errorf("%w: no samples to evaluate", errs.ErrEmptyDataset)
	}

	rep := &ResidualReport{
		X:                samples.Xs(),
		Actual:           samples.Ys(),
		Residuals:        make([]float64, n),
		AbsoluteErrors:   make([]float64, n),
		PercentageErrors: make([]float64, n),
	}
	rep.Predicted = PredictBatch(coeffs, rep.X)

	var ssRes float64
	for i := range n {
		r := rep.Actual[i] - rep.Predicted[i]
		abs := math.Abs(r)
		rep.Residuals[i] = r
		rep.AbsoluteErrors[i] = abs
		rep.PercentageErrors[i] = percentageError(abs, rep.Actual[i])
		rep.MaxAbsError = math.Max(rep.MaxAbsError, abs)
		ssRes += r * r
	}

	rep.MSE = ssRes / float64(n)
	rep.RMSE = math.Sqrt(rep.MSE)

	mean := stat.Mean(rep.Actual, nil)
	var ssTot float64
	for _, y := range rep.Actual {
		d := y - mean
		ssTot += d * d
	}
	if ssTot > 0 {
		rep.RSquared = 1 - ssRes/ssTot
	}

	return rep, nil
}

// Len returns the number of evaluated samples.
func (r *ResidualReport) Len() int {
	return len(r.Residuals)
}

// MeanPercentageError averages the finite percentage errors. Samples whose
// actual value is zero are excluded.
func (r *ResidualReport) MeanPercentageError() float64 {
	var sum float64
	var count int
	for _, p := range r.PercentageErrors {
		if math.IsInf(p, 0) {
			continue
		}
		sum += p
		count++
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

func (r *ResidualReport) String() string {
	return fmt.Sprintf("Residuals{N: %d, MSE: %.6g, RMSE: %.6g, MaxAbs: %.6g, R²: %.4f}",
		r.Len(), r.MSE, r.RMSE, r.MaxAbsError, r.RSquared)
}

func percentageError(absResidual, actual float64) float64 {
	if actual == 0 {
		if absResidual == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return absResidual / math.Abs(actual) * 100
}

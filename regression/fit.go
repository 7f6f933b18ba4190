package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/calfit/errs"
)

// Fit computes the least-squares polynomial coefficients of the given degree for
// samples, ordered from the constant term to the highest power.
//
// Preconditions are checked in order before any computation:
//   - degree < 1 returns errs.ErrInvalidDegree
//   - len(samples) < degree+1 returns errs.ErrInsufficientData
//   - a NaN or infinite value returns errs.ErrNonFiniteSample
//
// A rank-deficient design matrix, for example fewer than degree+1 distinct X
// values, is not an error: the minimum-norm least-squares solution is returned.
// Finite X values whose degree-th power overflows float64, such as 1e200 at
// degree 2, return errs.ErrDesignOverflow; rescale X before fitting.
// Identical inputs always produce bit-identical coefficients.
func Fit(samples Dataset, degree int, opts ...FitOption) (Coefficients, error) {
	sol, err := solve(samples, degree, opts)
	if err != nil {
		return nil, err
	}

	return sol.coeffs, nil
}

// FitModel is Fit plus solver diagnostics and the training residual report.
func FitModel(samples Dataset, degree int, opts ...FitOption) (*Model, error) {
	sol, err := solve(samples, degree, opts)
	if err != nil {
		return nil, err
	}

	training, err := EvaluateResiduals(sol.coeffs, samples)
	if err != nil {
		return nil, err
	}

	return &Model{
		Degree:         degree,
		Coefficients:   sol.coeffs,
		Rank:           sol.rank,
		Condition:      sol.cond,
		SingularValues: sol.singular,
		Formula:        sol.coeffs.String(),
		Training:       training,
	}, nil
}

type solution struct {
	coeffs   Coefficients
	rank     int
	cond     float64
	singular []float64
}

func checkFitInput(samples Dataset, degree int) error {
	if degree < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", errs.ErrInvalidDegree, degree)
	}
	if len(samples) < degree+1 {
		return fmt.Errorf("%w: %d samples for degree %d, need at least %d",
			errs.ErrInsufficientData, len(samples), degree, degree+1)
	}

	return samples.Validate()
}

func solve(samples Dataset, degree int, opts []FitOption) (*solution, error) {
	if err := checkFitInput(samples, degree); err != nil {
		return nil, err
	}

	cfg, err := newFitConfig(opts)
	if err != nil {
		return nil, err
	}

	n, ncoef := len(samples), degree+1
	rcond := cfg.Rcond
	if rcond == 0 {
		rcond = defaultRcond(n, ncoef)
	}

	a := DesignMatrix(samples.Xs(), degree)
	if err := checkDesign(a); err != nil {
		return nil, err
	}
	b := mat.NewVecDense(n, samples.Ys())

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: svd did not converge for %d samples, degree %d", errs.ErrSolveFailed, n, degree)
	}

	// The all-ones column keeps σ_max > 0 and rcond < 1, so rank >= 1.
	rank := svd.Rank(rcond)

	var x mat.VecDense
	svd.SolveVecTo(&x, b, rank)

	coeffs := make(Coefficients, ncoef)
	for i := range coeffs {
		coeffs[i] = x.AtVec(i)
	}

	singular := svd.Values(nil)
	cond := math.Inf(1)
	if last := singular[len(singular)-1]; last > 0 {
		cond = singular[0] / last
	}

	return &solution{
		coeffs:   coeffs,
		rank:     rank,
		cond:     cond,
		singular: singular,
	}, nil
}

// checkDesign reports the first row whose highest power is not finite. Lower
// powers have smaller magnitude, so the last column decides.
func checkDesign(a *mat.Dense) error {
	rows, cols := a.Dims()
	for i := range rows {
		if v := a.At(i, cols-1); math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: sample %d x=%g raised to %d", errs.ErrDesignOverflow, i, a.At(i, 1), cols-1)
		}
	}

	return nil
}

// defaultRcond mirrors the conventional least-squares cut-off ε·max(m, n).
func defaultRcond(rows, cols int) float64 {
	return eps * float64(max(rows, cols))
}

// eps is the float64 machine epsilon, 2^-52.
const eps = 0x1p-52

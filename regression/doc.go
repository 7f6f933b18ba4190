// Package regression fits polynomials to paired samples by linear least squares and
// evaluates the fit against any labeled dataset.
//
// The package is the numerical core of calfit. Every function is pure: inputs are
// never modified, results are freshly allocated, and nothing is cached, so all
// functions are safe for concurrent use without coordination.
//
// # Model
//
// A polynomial of degree d is described by d+1 coefficients ordered from the
// constant term to the highest power:
//
//	y ≈ a₀ + a₁·x + a₂·x² + … + a_d·x^d
//
// Fit builds the n×(d+1) design matrix whose column j holds x^j for every sample
// (column 0 is all ones) and solves the least-squares problem with a thin singular
// value decomposition. Singular values below rcond·σ_max are discarded, so a
// rank-deficient design matrix (collinear or repeated x values) yields the
// minimum-norm solution instead of an error.
//
// # Usage
//
// Fitting output voltage as a function of temperature:
//
//	samples := regression.Dataset{
//	    {X: 23.6, Y: 2.688}, {X: 42.7, Y: 2.727}, {X: 46.5, Y: 2.732},
//	    {X: 60.8, Y: 2.781}, {X: 81.5, Y: 2.864},
//	}
//
//	coeffs, err := regression.Fit(samples, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := regression.Predict(coeffs, 50.0)
//
//	report, err := regression.EvaluateResiduals(coeffs, validation)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("validation MSE: %.3e\n", report.MSE)
//
// # Choosing a degree
//
// The degree is free configuration. Compare fits several candidate degrees on a
// training set and ranks them by mean squared error on a held-out validation set:
//
//	result, err := regression.Compare(training, validation, []int{1, 2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit)
//
// # Errors
//
// Preconditions are checked before any computation. Fit reports
// errs.ErrInvalidDegree for degree < 1, errs.ErrInsufficientData when there are
// fewer samples than coefficients and errs.ErrNonFiniteSample for NaN or infinite
// values. EvaluateResiduals reports errs.ErrEmptyDataset for zero samples.
package regression

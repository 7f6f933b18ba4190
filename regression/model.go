package regression

import "fmt"

// Model is a fitted polynomial together with its solver diagnostics.
//
// Fields:
//   - Degree: The polynomial degree that was requested
//   - Coefficients: The fitted parameters, constant term first
//   - Rank: Effective rank of the design matrix (degree+1 when well posed)
//   - Condition: Ratio of the largest to the smallest singular value, +Inf if singular
//   - Formula: Human-readable polynomial
//   - Training: Residuals over the samples the model was fitted on
//   - Evaluation: Residuals over the set used for ranking (set by Compare)
type Model struct {
	// Degree is the polynomial degree.
	Degree int
	// Coefficients contains the model coefficients, constant term first.
	Coefficients Coefficients
	// Rank is the effective rank of the design matrix.
	Rank int
	// Condition is the 2-norm condition number of the design matrix.
	Condition float64
	// SingularValues holds the design matrix singular values in descending order.
	SingularValues []float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Training is the residual report over the training samples.
	Training *ResidualReport
	// Evaluation is the residual report used to rank the model, nil outside Compare.
	Evaluation *ResidualReport
}

// RankDeficient reports whether the design matrix lost rank, in which case the
// coefficients are the minimum-norm least-squares solution.
func (m *Model) RankDeficient() bool {
	return m.Rank < m.Degree+1
}

// String returns a string representation of the model.
//
// Returns:
//   - string: Formatted model information
func (m *Model) String() string {
	mse := 0.0
	if m.Training != nil {
		mse = m.Training.MSE
	}

	return fmt.Sprintf("Model{Degree: %d, Rank: %d, MSE: %.6g, Formula: %s}",
		m.Degree, m.Rank, mse, m.Formula)
}

// Result is the outcome of a degree comparison.
//
// BestFit is the model with the lowest evaluation MSE; AllModels holds every
// fitted candidate ranked best first.
type Result struct {
	// BestFit is the best-fit model (lowest evaluation MSE).
	BestFit *Model
	// AllModels contains all candidate models ranked by evaluation MSE (best first).
	AllModels []*Model
	// Skipped lists the degrees that had too few samples to be fitted.
	Skipped []int
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}",
		r.BestFit, len(r.AllModels))
}

package regression

import (
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/calfit/errs"
)

// Compare fits every degree in degrees on train and ranks the fitted models by
// their MSE over validation.
//
// When validation is empty the training residuals are used for ranking, which
// always favors the highest degree. Ties keep the lower degree first.
//
// Degrees that fail with errs.ErrInsufficientData are recorded in Result.Skipped;
// any other error aborts the comparison. If degrees is empty, or every degree is
// skipped, Compare returns errs.ErrInsufficientData.
//
// Parameters:
//   - train: Samples used for fitting
//   - validation: Held-out samples used for ranking (may be empty)
//   - degrees: Candidate polynomial degrees, duplicates are ignored
//
// Returns:
//   - *Result: Ranked models, best first
//   - error: Fit or evaluation error
func Compare(train, validation Dataset, degrees []int, opts ...FitOption) (*Result, error) {
	if len(degrees) == 0 {
		return nil, fmt.Errorf("%w: no candidate degrees", errs.ErrInsufficientData)
	}

	if err := validation.Validate(); err != nil {
		return nil, fmt.Errorf("validation set: %w", err)
	}

	candidates := slices.Clone(degrees)
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	res := &Result{}
	for _, degree := range candidates {
		m, err := FitModel(train, degree, opts...)
		if errors.Is(err, errs.ErrInsufficientData) {
			res.Skipped = append(res.Skipped, degree)
			continue
		}
		if err != nil {
			return nil, err
		}

		m.Evaluation = m.Training
		if len(validation) > 0 {
			if m.Evaluation, err = EvaluateResiduals(m.Coefficients, validation); err != nil {
				return nil, err
			}
		}

		res.AllModels = append(res.AllModels, m)
	}

	if len(res.AllModels) == 0 {
		return nil, fmt.Errorf("%w: %d samples cannot fit any of degrees %v",
			errs.ErrInsufficientData, len(train), candidates)
	}

	// Stable sort over ascending degrees keeps the lower degree first on ties.
	slices.SortStableFunc(res.AllModels, func(a, b *Model) int {
		if a.Evaluation.MSE < b.Evaluation.MSE {
			return -1
		}
		if a.Evaluation.MSE > b.Evaluation.MSE {
			return 1
		}

		return 0
	})
	res.BestFit = res.AllModels[0]

	return res, nil
}

package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/internal/options"
)

// FitConfig holds the solver settings for Fit, FitModel and Compare.
type FitConfig struct {
	// Rcond is the relative singular value cut-off. Singular values at or below
	// Rcond·σ_max are treated as zero. A zero value selects the default
	// ε·max(n, degree+1), where ε is the float64 machine epsilon.
	Rcond float64
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithRcond sets the relative singular value cut-off. It must lie in [0, 1);
// zero restores the default.
func WithRcond(rcond float64) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if math.IsNaN(rcond) || rcond < 0 || rcond >= 1 {
			return fmt.Errorf("%w: %v (want 0 <= rcond < 1)", errs.ErrInvalidRcond, rcond)
		}
		cfg.Rcond = rcond

		return nil
	})
}

func newFitConfig(opts []FitOption) (FitConfig, error) {
	return options.Build(FitConfig{}, opts...)
}

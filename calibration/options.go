package calibration

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/internal/options"
	"github.com/arloliu/calfit/regression"
)

const (
	// DefaultDegree is the polynomial degree used when none is configured.
	DefaultDegree = 2
	// DefaultCurvePoints is the number of evenly spaced samples on the fitted curve.
	DefaultCurvePoints = 300
	// DefaultCurveMargin extends the curve beyond the training range on both sides,
	// in units of the independent variable.
	DefaultCurveMargin = 2.0
)

// Config holds the settings of a calibration run.
type Config struct {
	Direction Direction
	Degree    int
	// Rcond is passed to regression.WithRcond when non-zero.
	Rcond float64
	// CurvePoints is the number of curve samples; zero disables the curve.
	CurvePoints int
	CurveMargin float64
	Logger      *zap.Logger
}

// Option configures a calibration run.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		Direction:   VoltageFromTemperature,
		Degree:      DefaultDegree,
		CurvePoints: DefaultCurvePoints,
		CurveMargin: DefaultCurveMargin,
		Logger:      zap.NewNop(),
	}
}

// Validate implements options.Validator.
func (c *Config) Validate() error {
	if !c.Direction.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrUnknownDirection, uint8(c.Direction))
	}
	if c.Degree < 1 {
		return fmt.Errorf("%w: %d (must be >= 1)", errs.ErrInvalidDegree, c.Degree)
	}
	if math.IsNaN(c.Rcond) || c.Rcond < 0 || c.Rcond >= 1 {
		return fmt.Errorf("%w: %v (want 0 <= rcond < 1)", errs.ErrInvalidRcond, c.Rcond)
	}
	if c.CurvePoints == 1 || c.CurvePoints < 0 {
		return fmt.Errorf("%w: %d points (want 0 or >= 2)", errs.ErrInvalidCurve, c.CurvePoints)
	}
	if c.CurveMargin < 0 || math.IsNaN(c.CurveMargin) || math.IsInf(c.CurveMargin, 0) {
		return fmt.Errorf("%w: margin %v", errs.ErrInvalidCurve, c.CurveMargin)
	}

	return nil
}

func (c *Config) fitOptions() []regression.FitOption {
	if c.Rcond == 0 {
		return nil
	}

	return []regression.FitOption{regression.WithRcond(c.Rcond)}
}

// WithDirection selects the fit direction.
func WithDirection(d Direction) Option {
	return options.NoError(func(c *Config) {
		c.Direction = d
	})
}

// WithDegree sets the polynomial degree.
func WithDegree(degree int) Option {
	return options.NoError(func(c *Config) {
		c.Degree = degree
	})
}

// WithRcond sets the singular value cut-off of the fit.
func WithRcond(rcond float64) Option {
	return options.NoError(func(c *Config) {
		c.Rcond = rcond
	})
}

// WithCurve configures the fitted curve grid. Pass points = 0 to skip the curve.
func WithCurve(points int, margin float64) Option {
	return options.NoError(func(c *Config) {
		c.CurvePoints = points
		c.CurveMargin = margin
	})
}

// WithLogger sets the logger for fit events. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.Logger = logger
	})
}

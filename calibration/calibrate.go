package calibration

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/calfit/internal/hash"
	"github.com/arloliu/calfit/internal/options"
	"github.com/arloliu/calfit/regression"
)

// Report is the outcome of a calibration run.
type Report struct {
	// Direction is the fit direction that produced Coefficients.
	Direction Direction
	// Degree is the polynomial degree.
	Degree int
	// Coefficients holds the fitted polynomial, constant term first.
	Coefficients regression.Coefficients
	// Formula renders Coefficients with T and V as variable names.
	Formula string
	// Rank is the effective rank of the design matrix.
	Rank int

	// TrainingSamples and ValidationSamples are the readings mapped onto the
	// direction's (x, y) pairs, in input order.
	TrainingSamples   regression.Dataset
	ValidationSamples regression.Dataset

	// Training holds the residuals over the training set.
	Training *regression.ResidualReport
	// Validation holds the residuals over the validation set, nil when it was empty.
	Validation *regression.ResidualReport

	// Curve samples the fitted polynomial on an evenly spaced grid over the
	// training range widened by the configured margin, ascending in X.
	Curve regression.Dataset
	// Fingerprint identifies the training set, see hash.Fingerprint.
	Fingerprint uint64
}

// Calibrate fits a polynomial to the training readings and evaluates it.
//
// Parameters:
//   - train: Readings used for fitting
//   - validation: Held-out readings used for evaluation (may be empty)
//   - opts: Run options (direction, degree, curve, logger)
//
// Returns:
//   - *Report: Fitted coefficients, residual reports and curve
//   - error: Option validation errors or the regression precondition errors
func Calibrate(train, validation []Reading, opts ...Option) (*Report, error) {
	cfg, err := options.Build(defaultConfig(), opts...)
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger.With(zap.Stringer("direction", cfg.Direction), zap.Int("degree", cfg.Degree))

	trainDs := cfg.Direction.Samples(train)
	validDs := cfg.Direction.Samples(validation)
	if err := validDs.Validate(); err != nil {
		return nil, fmt.Errorf("validation readings: %w", err)
	}

	model, err := regression.FitModel(trainDs, cfg.Degree, cfg.fitOptions()...)
	if err != nil {
		logger.Debug("calibration fit rejected", zap.Int("training", len(trainDs)), zap.Error(err))
		return nil, err
	}
	if model.RankDeficient() {
		logger.Warn("rank-deficient design matrix, using minimum-norm coefficients",
			zap.Int("rank", model.Rank), zap.Int("distinct_x", trainDs.DistinctX()))
	}

	xName, yName := cfg.Direction.Variables()
	rep := &Report{
		Direction:         cfg.Direction,
		Degree:            cfg.Degree,
		Coefficients:      model.Coefficients,
		Formula:           model.Coefficients.Formula(xName, yName),
		Rank:              model.Rank,
		TrainingSamples:   trainDs,
		ValidationSamples: validDs,
		Training:          model.Training,
		Fingerprint:       hash.Fingerprint(trainDs.Xs(), trainDs.Ys()),
	}

	if len(validDs) > 0 {
		if rep.Validation, err = regression.EvaluateResiduals(model.Coefficients, validDs); err != nil {
			return nil, err
		}
	}

	if cfg.CurvePoints > 0 {
		lo, hi := trainDs.Range()
		rep.Curve = Curve(model.Coefficients, lo-cfg.CurveMargin, hi+cfg.CurveMargin, cfg.CurvePoints)
	}

	fields := []zap.Field{
		zap.String("formula", rep.Formula),
		zap.Int("training", len(trainDs)),
		zap.Float64("training_mse", rep.Training.MSE),
		zap.Uint64("fingerprint", rep.Fingerprint),
	}
	if rep.Validation != nil {
		fields = append(fields,
			zap.Int("validation", len(validDs)),
			zap.Float64("validation_mse", rep.Validation.MSE),
		)
	}
	logger.Info("calibration fitted", fields...)

	return rep, nil
}

// Curve evaluates coeffs at n evenly spaced points from lo to hi inclusive.
// n must be at least 2.
func Curve(coeffs regression.Coefficients, lo, hi float64, n int) regression.Dataset {
	xs := floats.Span(make([]float64, n), lo, hi)
	ys := coeffs.PredictBatch(xs)

	curve := make(regression.Dataset, n)
	for i := range xs {
		curve[i] = regression.Sample{X: xs[i], Y: ys[i]}
	}

	return curve
}

// Set names one of the evaluated sample sets of a Report.
type Set uint8

const (
	TrainingSet Set = iota
	ValidationSet
)

func (s Set) String() string {
	if s == ValidationSet {
		return "validation"
	}

	return "training"
}

// Row is one evaluated sample of a Report, ready for tabulation.
type Row struct {
	X               float64 `json:"x"`
	Actual          float64 `json:"actual"`
	Predicted       float64 `json:"predicted"`
	AbsoluteError   float64 `json:"absolute_error"`
	PercentageError float64 `json:"percentage_error"`
}

// Rows returns the evaluated samples of the chosen set ordered by ascending X.
// It returns nil for a validation set that was not supplied.
func (r *Report) Rows(which Set) []Row {
	res := r.Training
	if which == ValidationSet {
		res = r.Validation
	}
	if res == nil {
		return nil
	}

	rows := make([]Row, res.Len())
	for i := range rows {
		rows[i] = Row{
			X:               res.X[i],
			Actual:          res.Actual[i],
			Predicted:       res.Predicted[i],
			AbsoluteError:   res.AbsoluteErrors[i],
			PercentageError: res.PercentageErrors[i],
		}
	}
	slices.SortStableFunc(rows, func(a, b Row) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})

	return rows
}

// Predict evaluates the fitted polynomial at x.
func (r *Report) Predict(x float64) float64 {
	return r.Coefficients.Predict(x)
}

package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calfit/errs"
)

// pt100 holds the five training readings of the lab calibration, temperature in °C
// against output voltage in V.
func pt100(t testing.TB) Dataset {
	t.Helper()

	ds, err := NewDataset(
		[]float64{23.6, 42.7, 46.5, 60.8, 81.5},
		[]float64{2.688, 2.727, 2.732, 2.781, 2.864},
	)
	require.NoError(t, err)

	return ds
}

func requireCoeffsNear(t *testing.T, want, got Coefficients, relTol float64) {
	t.Helper()

	require.Len(t, got, len(want))
	for i := range want {
		tol := relTol * math.Max(1, math.Abs(want[i]))
		require.InDelta(t, want[i], got[i], tol, "coefficient %d", i)
	}
}

func TestFit_ExactRecovery(t *testing.T) {
	tests := []struct {
		name   string
		xs     []float64
		coeffs Coefficients
	}{
		{name: "line", xs: []float64{-2, 3}, coeffs: Coefficients{0.5, -1.75}},
		{name: "quadratic", xs: []float64{-1, 0.5, 2}, coeffs: Coefficients{1, 2, 3}},
		{name: "cubic", xs: []float64{-1.5, -0.5, 0.75, 2}, coeffs: Coefficients{1.25, -0.5, 0.3, 0.125}},
		{name: "quartic overdetermined", xs: []float64{-1, -0.6, -0.2, 0.1, 0.4, 0.8, 1.3}, coeffs: Coefficients{-0.7, 0.2, 1.1, -0.4, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := NewDataset(tt.xs, PredictBatch(tt.coeffs, tt.xs))
			require.NoError(t, err)

			got, err := Fit(ds, tt.coeffs.Degree())
			require.NoError(t, err)
			requireCoeffsNear(t, tt.coeffs, got, 1e-9)

			rep, err := EvaluateResiduals(got, ds)
			require.NoError(t, err)
			require.Less(t, rep.MSE, 1e-18)
		})
	}
}

func TestFit_DegreeOneThroughTwoPoints(t *testing.T) {
	ds := Dataset{{X: 1, Y: 3}, {X: 3, Y: 7}}

	got, err := Fit(ds, 1)
	require.NoError(t, err)
	requireCoeffsNear(t, Coefficients{1, 2}, got, 1e-12)

	rep, err := EvaluateResiduals(got, ds)
	require.NoError(t, err)
	require.LessOrEqual(t, rep.MSE, 1e-20)
}

func TestFit_TrainingMSENonIncreasing(t *testing.T) {
	var ds Dataset
	for i := range 13 {
		x := float64(i) * 0.25
		ds = append(ds, Sample{X: x, Y: math.Sin(x) + 0.1*x})
	}

	prev := math.Inf(1)
	for degree := 1; degree <= 4; degree++ {
		coeffs, err := Fit(ds, degree)
		require.NoError(t, err)

		rep, err := EvaluateResiduals(coeffs, ds)
		require.NoError(t, err)
		require.LessOrEqual(t, rep.MSE, prev+1e-12, "degree %d", degree)
		prev = rep.MSE
	}
}

func TestFit_Deterministic(t *testing.T) {
	ds := pt100(t)

	first, err := Fit(ds, 2)
	require.NoError(t, err)

	for range 5 {
		again, err := Fit(ds.Clone(), 2)
		require.NoError(t, err)
		for i := range first {
			require.Equal(t, math.Float64bits(first[i]), math.Float64bits(again[i]))
		}
	}
}

func TestFit_PermutationInvariant(t *testing.T) {
	ds := pt100(t)
	permuted := Dataset{ds[3], ds[0], ds[4], ds[2], ds[1]}

	want, err := Fit(ds, 2)
	require.NoError(t, err)
	got, err := Fit(permuted, 2)
	require.NoError(t, err)

	requireCoeffsNear(t, want, got, 1e-9)
}

func TestFit_DoesNotMutateInput(t *testing.T) {
	ds := pt100(t)
	orig := ds.Clone()

	_, err := Fit(ds, 3)
	require.NoError(t, err)
	require.Equal(t, orig, ds)
}

func TestFit_PT100(t *testing.T) {
	ds := pt100(t)

	coeffs, err := Fit(ds, 2)
	require.NoError(t, err)
	require.Len(t, coeffs, 3)
	require.InDelta(t, 2.67015771833018, coeffs[0], 1e-8)
	require.InDelta(t, 8.563719049732985e-05, coeffs[1], 1e-9)
	require.InDelta(t, 2.818052352994113e-05, coeffs[2], 1e-11)

	require.InDelta(t, 2.688, Predict(coeffs, 23.6), 0.01)

	rep, err := EvaluateResiduals(coeffs, ds)
	require.NoError(t, err)
	require.LessOrEqual(t, rep.MSE, 1e-4)
	require.InDelta(t, 2.991203797855568e-06, rep.MSE, 1e-10)
}

func TestFit_PT100InverseDirection(t *testing.T) {
	ds := pt100(t)
	inverse := make(Dataset, len(ds))
	for i, s := range ds {
		inverse[i] = Sample{X: s.Y, Y: s.X}
	}

	tests := []struct {
		degree int
		mse    float64
	}{
		{degree: 1, mse: 11.83954483858982},
		{degree: 2, mse: 1.3793324845536399},
		{degree: 3, mse: 0.3201001426743333},
	}

	for _, tt := range tests {
		coeffs, err := Fit(inverse, tt.degree)
		require.NoError(t, err)

		rep, err := EvaluateResiduals(coeffs, inverse)
		require.NoError(t, err)
		require.InDelta(t, tt.mse, rep.MSE, 1e-3, "degree %d", tt.degree)
	}
}

func TestFit_RankDeficientReturnsMinimumNorm(t *testing.T) {
	// Two distinct x values cannot pin down a quadratic.
	ds := Dataset{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 5}, {X: 2, Y: 7}}

	m, err := FitModel(ds, 2, WithRcond(1e-10))
	require.NoError(t, err)
	require.Equal(t, 2, m.Rank)
	require.True(t, m.RankDeficient())
	requireCoeffsNear(t, Coefficients{2.0 / 7, 4.0 / 7, 8.0 / 7}, m.Coefficients, 1e-9)

	require.InDelta(t, 2.0, m.Coefficients.Predict(1), 1e-9)
	require.InDelta(t, 6.0, m.Coefficients.Predict(2), 1e-9)
}

func TestFit_Preconditions(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name    string
		samples Dataset
		degree  int
		opts    []FitOption
		wantErr error
	}{
		{name: "zero degree", samples: Dataset{{0, 0}, {1, 1}}, degree: 0, wantErr: errs.ErrInvalidDegree},
		{name: "negative degree", samples: Dataset{{0, 0}, {1, 1}}, degree: -3, wantErr: errs.ErrInvalidDegree},
		{name: "degree checked before count", samples: nil, degree: 0, wantErr: errs.ErrInvalidDegree},
		{name: "empty samples", samples: nil, degree: 1, wantErr: errs.ErrInsufficientData},
		{name: "two samples degree two", samples: Dataset{{0, 0}, {1, 1}}, degree: 2, wantErr: errs.ErrInsufficientData},
		{name: "count checked before finiteness", samples: Dataset{{nan, 0}}, degree: 1, wantErr: errs.ErrInsufficientData},
		{name: "NaN y", samples: Dataset{{0, 0}, {1, nan}}, degree: 1, wantErr: errs.ErrNonFiniteSample},
		{name: "infinite x", samples: Dataset{{math.Inf(-1), 0}, {1, 1}}, degree: 1, wantErr: errs.ErrNonFiniteSample},
		{name: "negative rcond", samples: Dataset{{0, 0}, {1, 1}}, degree: 1, opts: []FitOption{WithRcond(-1e-3)}, wantErr: errs.ErrInvalidRcond},
		{name: "rcond of one", samples: Dataset{{0, 0}, {1, 1}}, degree: 1, opts: []FitOption{WithRcond(1)}, wantErr: errs.ErrInvalidRcond},
		{name: "NaN rcond", samples: Dataset{{0, 0}, {1, 1}}, degree: 1, opts: []FitOption{WithRcond(nan)}, wantErr: errs.ErrInvalidRcond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coeffs, err := Fit(tt.samples, tt.degree, tt.opts...)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, coeffs)
		})
	}
}

func TestFit_DesignOverflow(t *testing.T) {
	ds := Dataset{{X: 1e200, Y: 1}, {X: 2e200, Y: 2}, {X: 3e200, Y: 3}, {X: 4e200, Y: 4}}

	coeffs, err := Fit(ds, 2)
	require.ErrorIs(t, err, errs.ErrDesignOverflow)
	require.Contains(t, err.Error(), "sample 0")
	require.Nil(t, coeffs)

	// Rescaled readings fit without trouble.
	scaled := make(Dataset, len(ds))
	for i, s := range ds {
		scaled[i] = Sample{X: s.X / 1e200, Y: s.Y}
	}
	coeffs, err = Fit(scaled, 2)
	require.NoError(t, err)
	requireCoeffsNear(t, Coefficients{0, 1, 0}, coeffs, 1e-9)
}

func TestFit_MinimumSampleCount(t *testing.T) {
	for degree := 1; degree <= 5; degree++ {
		ds := make(Dataset, degree+1)
		for i := range ds {
			x := float64(i) / float64(degree)
			ds[i] = Sample{X: x, Y: 1 + x}
		}

		_, err := Fit(ds[:degree], degree)
		require.ErrorIs(t, err, errs.ErrInsufficientData, "degree %d", degree)

		_, err = Fit(ds, degree)
		require.NoError(t, err, "degree %d", degree)
	}
}

func TestFitModel(t *testing.T) {
	ds := pt100(t)

	m, err := FitModel(ds, 2)
	require.NoError(t, err)
	require.Equal(t, 2, m.Degree)
	require.Equal(t, 3, m.Rank)
	require.False(t, m.RankDeficient())
	require.Len(t, m.SingularValues, 3)
	require.Greater(t, m.Condition, 1.0)
	require.False(t, math.IsInf(m.Condition, 0))
	require.Equal(t, m.Coefficients.String(), m.Formula)
	require.NotNil(t, m.Training)
	require.Nil(t, m.Evaluation)
	require.Equal(t, 5, m.Training.Len())
	require.Contains(t, m.String(), "Degree: 2")

	coeffs, err := Fit(ds, 2)
	require.NoError(t, err)
	require.Equal(t, coeffs, m.Coefficients)
}

func TestDesignMatrix(t *testing.T) {
	a := DesignMatrix([]float64{2, -3}, 3)

	rows, cols := a.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 4, cols)
	require.Equal(t, []float64{1, 2, 4, 8}, a.RawRowView(0))
	require.Equal(t, []float64{1, -3, 9, -27}, a.RawRowView(1))
}

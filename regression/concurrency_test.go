package regression

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcurrentFitAndEvaluate(t *testing.T) {
	ds := pt100(t)
	orig := ds.Clone()

	wantCoeffs, err := Fit(ds, 2)
	require.NoError(t, err)
	wantRep, err := EvaluateResiduals(wantCoeffs, ds)
	require.NoError(t, err)

	const workers = 8
	type outcome struct {
		coeffs Coefficients
		mse    float64
		ys     []float64
		err    error
	}
	results := make([]outcome, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			for range 20 {
				coeffs, err := Fit(ds, 2)
				if err != nil {
					results[i] = outcome{err: err}
					return
				}
				rep, err := EvaluateResiduals(wantCoeffs, ds)
				if err != nil {
					results[i] = outcome{err: err}
					return
				}
				results[i] = outcome{
					coeffs: coeffs,
					mse:    rep.MSE,
					ys:     PredictBatch(wantCoeffs, ds.Xs()),
				}
			}
		}(i)
	}
	wg.Wait()

	wantYs := PredictBatch(wantCoeffs, ds.Xs())
	for i, res := range results {
		require.NoError(t, res.err, "worker %d", i)
		require.Len(t, res.coeffs, len(wantCoeffs))
		for j := range wantCoeffs {
			require.Equal(t, math.Float64bits(wantCoeffs[j]), math.Float64bits(res.coeffs[j]), "worker %d coefficient %d", i, j)
		}
		require.Equal(t, wantRep.MSE, res.mse, "worker %d", i)
		require.Equal(t, wantYs, res.ys, "worker %d", i)
	}
	require.Equal(t, orig, ds)
}

// Package calfit fits polynomial calibration curves to sensor readings by
// least squares and evaluates how well they predict.
//
// The fitter is stateless: every call takes its samples and returns fresh
// results, so all functions are safe for concurrent use.
//
// # Core Features
//
//   - Least-squares polynomial fitting of any degree ≥ 1 via SVD
//   - Residual reports with MSE, RMSE, maximum error and R²
//   - Degree comparison on a held-out validation set
//   - Temperature/voltage calibration workflow with YAML profiles
//   - Compact binary archive of fitted calibrations (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Fitting and evaluating a quadratic:
//
//	samples, _ := calfit.NewDataset(
//	    []float64{23.6, 42.7, 46.5, 60.8, 81.5},
//	    []float64{2.688, 2.727, 2.732, 2.781, 2.864},
//	)
//	coeffs, err := calfit.Fit(samples, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rep, _ := calfit.EvaluateResiduals(coeffs, samples)
//	fmt.Printf("%s, MSE %.3g\n", coeffs, rep.MSE)
//
// Archiving a calibration:
//
//	rep, _ := calfit.Calibrate(train, validation, calibration.WithDegree(2))
//	data, _ := calfit.Archive("bench-pt100", rep, time.Now())
//	rec, _ := calfit.Restore(data)
//
// # Package Structure
//
// This package provides top-level wrappers for the common cases. The
// regression, calibration, archive, sensor and server packages expose the
// full API.
package calfit

import (
	"time"

	"github.com/arloliu/calfit/archive"
	"github.com/arloliu/calfit/calibration"
	"github.com/arloliu/calfit/internal/hash"
	"github.com/arloliu/calfit/regression"
)

type (
	// Sample is one (x, y) observation.
	Sample = regression.Sample
	// Dataset is an ordered list of samples.
	Dataset = regression.Dataset
	// Coefficients holds a polynomial, constant term first.
	Coefficients = regression.Coefficients
	// ResidualReport describes how coefficients perform on a dataset.
	ResidualReport = regression.ResidualReport
)

// NewDataset pairs xs with ys. Both slices must have the same length.
func NewDataset(xs, ys []float64) (Dataset, error) {
	return regression.NewDataset(xs, ys)
}

// Fit returns the degree+1 least-squares coefficients for samples.
//
// Returns errs.ErrInvalidDegree when degree < 1, errs.ErrInsufficientData when
// there are fewer than degree+1 samples, and errs.ErrNonFiniteSample when a
// sample holds NaN or ±Inf.
func Fit(samples Dataset, degree int, opts ...regression.FitOption) (Coefficients, error) {
	return regression.Fit(samples, degree, opts...)
}

// Predict evaluates the polynomial at x.
func Predict(coeffs Coefficients, x float64) float64 {
	return regression.Predict(coeffs, x)
}

// PredictBatch evaluates the polynomial at every x, preserving order.
func PredictBatch(coeffs Coefficients, xs []float64) []float64 {
	return regression.PredictBatch(coeffs, xs)
}

// EvaluateResiduals scores coefficients against samples.
// Returns errs.ErrEmptyDataset when samples is empty.
func EvaluateResiduals(coeffs Coefficients, samples Dataset) (*ResidualReport, error) {
	return regression.EvaluateResiduals(coeffs, samples)
}

// Calibrate runs the calibration workflow over temperature/voltage readings.
// By default it fits voltage from temperature with a quadratic.
func Calibrate(train, validation []calibration.Reading, opts ...calibration.Option) (*calibration.Report, error) {
	return calibration.Calibrate(train, validation, opts...)
}

// Archive encodes a calibration report of the named sensor into the binary
// archive format.
func Archive(sensor string, rep *calibration.Report, createdAt time.Time, opts ...archive.EncoderOption) ([]byte, error) {
	return archive.Encode(archive.NewRecord(sensor, rep, createdAt), opts...)
}

// ArchiveProfile encodes a calibration report under the profile's sensor name,
// using the compression the profile selects.
func ArchiveProfile(p calibration.Profile, rep *calibration.Report, createdAt time.Time) ([]byte, error) {
	return archive.EncodeProfile(p, rep, createdAt)
}

// Restore decodes an archived calibration, verifying its CRC32 checksum and
// that the stored sensor name matches the header's sensor ID.
func Restore(data []byte) (*archive.Record, error) {
	return archive.Decode(data)
}

// SensorID computes the 64-bit identifier stored in archive headers.
func SensorID(name string) uint64 {
	return hash.ID(name)
}

// Package errs defines the sentinel errors shared by all calfit packages.
//
// Functions wrap these values with additional context using fmt.Errorf and the %w
// verb, so callers should test for them with errors.Is rather than comparing
// error strings:
//
//	coeffs, err := regression.Fit(samples, 2)
//	if errors.Is(err, errs.ErrInsufficientData) {
//	    // supply more samples or lower the degree
//	}
package errs

import "errors"

// Fit and evaluation preconditions.
var (
	// ErrInvalidDegree is returned when a polynomial degree is less than 1.
	ErrInvalidDegree = errors.New("invalid polynomial degree")
	// ErrInsufficientData is returned when fewer samples than coefficients are supplied.
	ErrInsufficientData = errors.New("insufficient data for polynomial fit")
	// ErrEmptyDataset is returned when residuals are requested for zero samples.
	ErrEmptyDataset = errors.New("empty dataset")
	// ErrNonFiniteSample is returned when a sample contains NaN or an infinity.
	ErrNonFiniteSample = errors.New("non-finite sample value")
	// ErrMismatchedLengths is returned when paired columns differ in length.
	ErrMismatchedLengths = errors.New("mismatched column lengths")
	// ErrSolveFailed is returned when the least-squares factorization does not converge.
	ErrSolveFailed = errors.New("least-squares solve failed")
	// ErrDesignOverflow is returned when a power x^k of a finite sample exceeds the float64 range.
	ErrDesignOverflow = errors.New("design matrix overflow")
	// ErrInvalidRcond is returned for a singular value cut-off outside [0, 1).
	ErrInvalidRcond = errors.New("invalid rcond")
)

// Calibration and sensor errors.
var (
	// ErrUnknownDirection is returned for an unrecognized fit direction.
	ErrUnknownDirection = errors.New("unknown fit direction")
	// ErrInvalidCurve is returned for a curve grid with fewer than two points or a negative margin.
	ErrInvalidCurve = errors.New("invalid curve configuration")
	// ErrADCOutOfRange is returned when an ADC count lies outside the converter range.
	ErrADCOutOfRange = errors.New("adc count out of range")
	// ErrInvalidADC is returned for a converter with a non-positive reference or range.
	ErrInvalidADC = errors.New("invalid adc configuration")
	// ErrWrongDirection is returned when coefficients were fitted in the wrong direction.
	ErrWrongDirection = errors.New("coefficients fitted in the wrong direction")
)

// Archive errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid header size")
	ErrInvalidMagicNumber  = errors.New("invalid magic number")
	ErrUnsupportedVersion  = errors.New("unsupported archive version")
	ErrChecksumMismatch    = errors.New("payload checksum mismatch")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrHashMismatch        = errors.New("sensor id does not match sensor name")
	ErrInvalidSensorName   = errors.New("invalid sensor name")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrTooManyCoefficients = errors.New("too many coefficients")
)

// Package sensor converts raw ADC counts into voltages and temperatures using a
// fitted calibration polynomial.
package sensor

import (
	"fmt"
	"math"

	"github.com/arloliu/calfit/errs"
)

// ADC describes a linear analog-to-digital converter: a count c maps to
// Reference·c/MaxCount volts.
type ADC struct {
	// Reference is the full-scale reference voltage.
	Reference float64 `json:"reference" yaml:"reference"`
	// MaxCount is the count reported at the reference voltage.
	MaxCount int `json:"max_count" yaml:"max_count"`
}

// DefaultADC returns a 10-bit converter with a 5 V reference.
func DefaultADC() ADC {
	return ADC{Reference: 5.0, MaxCount: 1023}
}

// Validate reports errs.ErrInvalidADC for a non-positive reference or range.
func (a ADC) Validate() error {
	if !(a.Reference > 0) || math.IsInf(a.Reference, 0) || a.MaxCount <= 0 {
		return fmt.Errorf("%w: reference %v, max count %d", errs.ErrInvalidADC, a.Reference, a.MaxCount)
	}

	return nil
}

// Voltage converts count to volts without range checks.
func (a ADC) Voltage(count int) float64 {
	return a.Reference * float64(count) / float64(a.MaxCount)
}

// CheckedVoltage converts count to volts and rejects counts outside [0, MaxCount].
func (a ADC) CheckedVoltage(count int) (float64, error) {
	if count < 0 || count > a.MaxCount {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", errs.ErrADCOutOfRange, count, a.MaxCount)
	}

	return a.Voltage(count), nil
}

// Resolution returns the voltage step of one count.
func (a ADC) Resolution() float64 {
	return a.Reference / float64(a.MaxCount)
}

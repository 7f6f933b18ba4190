package sensor

import (
	"fmt"

	"github.com/arloliu/calfit/calibration"
	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/regression"
)

// Measurement is one converted ADC sample.
type Measurement struct {
	Count       int     `json:"count"`
	Voltage     float64 `json:"voltage"`
	Temperature float64 `json:"temperature"`
}

// Thermometer applies a T(V) calibration polynomial to ADC counts.
type Thermometer struct {
	adc    ADC
	coeffs regression.Coefficients
}

// NewThermometer creates a thermometer from T(V) coefficients.
//
// It returns errs.ErrWrongDirection unless dir is calibration.TemperatureFromVoltage,
// errs.ErrInvalidDegree for fewer than two coefficients and errs.ErrInvalidADC
// for an invalid converter. The coefficients are copied.
func NewThermometer(adc ADC, dir calibration.Direction, coeffs regression.Coefficients) (*Thermometer, error) {
	if err := adc.Validate(); err != nil {
		return nil, err
	}
	if dir != calibration.TemperatureFromVoltage {
		return nil, fmt.Errorf("%w: have %s, need %s", errs.ErrWrongDirection, dir, calibration.TemperatureFromVoltage)
	}
	if coeffs.Degree() < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidDegree, coeffs.Degree())
	}

	return &Thermometer{adc: adc, coeffs: coeffs.Clone()}, nil
}

// FromReport creates a thermometer from a calibration report.
func FromReport(adc ADC, rep *calibration.Report) (*Thermometer, error) {
	return NewThermometer(adc, rep.Direction, rep.Coefficients)
}

// ADC returns the converter of the thermometer.
func (t *Thermometer) ADC() ADC {
	return t.adc
}

// Coefficients returns a copy of the T(V) polynomial.
func (t *Thermometer) Coefficients() regression.Coefficients {
	return t.coeffs.Clone()
}

// TemperatureAt evaluates the calibration polynomial at a voltage.
func (t *Thermometer) TemperatureAt(voltage float64) float64 {
	return t.coeffs.Predict(voltage)
}

// Temperature converts an ADC count to °C. Counts outside the converter range
// return errs.ErrADCOutOfRange.
func (t *Thermometer) Temperature(count int) (float64, error) {
	m, err := t.Read(count)
	if err != nil {
		return 0, err
	}

	return m.Temperature, nil
}

// Read converts an ADC count into a full measurement.
func (t *Thermometer) Read(count int) (Measurement, error) {
	v, err := t.adc.CheckedVoltage(count)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Count: count, Voltage: v, Temperature: t.TemperatureAt(v)}, nil
}

// Temperatures converts every count, failing on the first out-of-range count.
func (t *Thermometer) Temperatures(counts []int) ([]float64, error) {
	temps := make([]float64, len(counts))
	for i, c := range counts {
		temp, err := t.Temperature(c)
		if err != nil {
			return nil, fmt.Errorf("count %d: %w", i, err)
		}
		temps[i] = temp
	}

	return temps, nil
}

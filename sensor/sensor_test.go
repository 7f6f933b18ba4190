package sensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calfit/calibration"
	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/regression"
)

func TestADC(t *testing.T) {
	adc := DefaultADC()
	require.NoError(t, adc.Validate())

	require.Zero(t, adc.Voltage(0))
	require.Equal(t, 5.0, adc.Voltage(1023))
	require.InDelta(t, 5.0*550/1023, adc.Voltage(550), 1e-15)
	require.InDelta(t, 0.004887585532746823, adc.Resolution(), 1e-15)

	v, err := adc.CheckedVoltage(1023)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	for _, count := range []int{-1, 1024} {
		_, err := adc.CheckedVoltage(count)
		require.ErrorIs(t, err, errs.ErrADCOutOfRange)
	}
}

func TestADC_Validate(t *testing.T) {
	bad := []ADC{
		{Reference: 0, MaxCount: 1023},
		{Reference: -5, MaxCount: 1023},
		{Reference: math.NaN(), MaxCount: 1023},
		{Reference: math.Inf(1), MaxCount: 1023},
		{Reference: 5, MaxCount: 0},
	}
	for _, adc := range bad {
		require.ErrorIs(t, adc.Validate(), errs.ErrInvalidADC)
	}
}

func TestThermometer(t *testing.T) {
	// T(V) = -876.974483·V³ + 6107.116386·V² - 13897.546295·V + 10390.951523
	coeffs := regression.Coefficients{10390.951523, -13897.546295, 6107.116386, -876.974483}

	th, err := NewThermometer(DefaultADC(), calibration.TemperatureFromVoltage, coeffs)
	require.NoError(t, err)

	coeffs[0] = 0
	require.Equal(t, 10390.951523, th.Coefficients()[0], "coefficients must be copied")

	m, err := th.Read(550)
	require.NoError(t, err)
	require.Equal(t, 550, m.Count)
	require.InDelta(t, 2.6881720430107525, m.Voltage, 1e-12)
	require.Equal(t, th.TemperatureAt(m.Voltage), m.Temperature)

	temp, err := th.Temperature(550)
	require.NoError(t, err)
	require.Equal(t, m.Temperature, temp)

	temps, err := th.Temperatures([]int{550, 560, 570})
	require.NoError(t, err)
	require.Len(t, temps, 3)
	require.Equal(t, temp, temps[0])

	_, err = th.Temperatures([]int{550, 2000})
	require.ErrorIs(t, err, errs.ErrADCOutOfRange)
	require.Equal(t, DefaultADC(), th.ADC())
}

func TestNewThermometer_Errors(t *testing.T) {
	coeffs := regression.Coefficients{-815.7, 314.2}

	_, err := NewThermometer(DefaultADC(), calibration.VoltageFromTemperature, coeffs)
	require.ErrorIs(t, err, errs.ErrWrongDirection)

	_, err = NewThermometer(DefaultADC(), calibration.TemperatureFromVoltage, regression.Coefficients{25})
	require.ErrorIs(t, err, errs.ErrInvalidDegree)

	_, err = NewThermometer(ADC{}, calibration.TemperatureFromVoltage, coeffs)
	require.ErrorIs(t, err, errs.ErrInvalidADC)
}

func TestFromReport(t *testing.T) {
	train := []calibration.Reading{
		{Temperature: 23.6, Voltage: 2.688},
		{Temperature: 42.7, Voltage: 2.727},
		{Temperature: 46.5, Voltage: 2.732},
		{Temperature: 60.8, Voltage: 2.781},
		{Temperature: 81.5, Voltage: 2.864},
	}

	rep, err := calibration.Calibrate(train, nil,
		calibration.WithDirection(calibration.TemperatureFromVoltage),
		calibration.WithDegree(1),
	)
	require.NoError(t, err)

	th, err := FromReport(DefaultADC(), rep)
	require.NoError(t, err)

	// 2.688 V sits between counts 550 and 551; the linear T(V) fit reads about 28.9 °C there.
	require.InDelta(t, -815.7330295281183+314.22311105282716*2.688, th.TemperatureAt(2.688), 1e-6)

	forward, err := calibration.Calibrate(train, nil)
	require.NoError(t, err)
	_, err = FromReport(DefaultADC(), forward)
	require.ErrorIs(t, err, errs.ErrWrongDirection)
}

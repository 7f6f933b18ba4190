package calibration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/regression"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"voltage-from-temperature", VoltageFromTemperature},
		{"VOLTAGE_FROM_TEMPERATURE", VoltageFromTemperature},
		{"v(t)", VoltageFromTemperature},
		{" temperature-from-voltage ", TemperatureFromVoltage},
		{"T(V)", TemperatureFromVoltage},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDirection("sideways")
	require.ErrorIs(t, err, errs.ErrUnknownDirection)
}

func TestDirection_String(t *testing.T) {
	for _, d := range []Direction{VoltageFromTemperature, TemperatureFromVoltage} {
		require.True(t, d.Valid())

		parsed, err := ParseDirection(d.String())
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}

	require.False(t, Direction(0).Valid())
	require.Equal(t, "unknown", Direction(0).String())

	_, err := Direction(0).MarshalText()
	require.ErrorIs(t, err, errs.ErrUnknownDirection)
}

func TestDirection_Samples(t *testing.T) {
	readings := []Reading{{Temperature: 25, Voltage: 2.69}, {Temperature: 50, Voltage: 2.75}}

	require.Equal(t,
		regression.Dataset{{X: 25, Y: 2.69}, {X: 50, Y: 2.75}},
		VoltageFromTemperature.Samples(readings))
	require.Equal(t,
		regression.Dataset{{X: 2.69, Y: 25}, {X: 2.75, Y: 50}},
		TemperatureFromVoltage.Samples(readings))
	require.Empty(t, VoltageFromTemperature.Samples(nil))

	x, y := TemperatureFromVoltage.Variables()
	require.Equal(t, "V", x)
	require.Equal(t, "T", y)
}

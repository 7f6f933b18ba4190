package calibration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/format"
)

const benchProfile = `
sensor: pt100-bench-a
direction: t(v)
degree: 3
curve:
  points: 50
  margin: 0.05
archive:
  compression: zstd
`

func TestLoadProfile(t *testing.T) {
	p, err := ParseProfile(benchProfile)
	require.NoError(t, err)

	require.Equal(t, "pt100-bench-a", p.Sensor)
	require.Equal(t, TemperatureFromVoltage, p.Direction)
	require.Equal(t, 3, p.Degree)
	require.Equal(t, CurveProfile{Points: 50, Margin: 0.05}, p.Curve)
	require.Equal(t, format.CompressionZstd, p.Archive.Compression)

	rep, err := Calibrate(benchTraining, benchValidation, p.Options()...)
	require.NoError(t, err)
	require.Equal(t, TemperatureFromVoltage, rep.Direction)
	require.Equal(t, 3, rep.Degree)
	require.Len(t, rep.Curve, 50)
	require.InDelta(t, 2.688-0.05, rep.Curve[0].X, 1e-12)
}

func TestLoadProfile_Defaults(t *testing.T) {
	p, err := ParseProfile("sensor: probe-7\n")
	require.NoError(t, err)

	want := DefaultProfile()
	want.Sensor = "probe-7"
	require.Equal(t, want, p)
}

func TestLoadProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "empty document", doc: "", wantErr: errs.ErrInvalidSensorName},
		{name: "missing sensor", doc: "degree: 2\n", wantErr: errs.ErrInvalidSensorName},
		{name: "bad direction", doc: "sensor: a\ndirection: upward\n", wantErr: errs.ErrUnknownDirection},
		{name: "bad degree", doc: "sensor: a\ndegree: 0\n", wantErr: errs.ErrInvalidDegree},
		{name: "bad compression", doc: "sensor: a\narchive:\n  compression: gzip\n", wantErr: errs.ErrInvalidCompression},
		{name: "bad curve", doc: "sensor: a\ncurve:\n  points: 1\n", wantErr: errs.ErrInvalidCurve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile(tt.doc)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := ParseProfile("sensor: a\ncolour: red\n")
	require.Error(t, err)
}

func TestProfile_MarshalRoundTrip(t *testing.T) {
	p, err := ParseProfile(benchProfile)
	require.NoError(t, err)

	out, err := p.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(out), "direction: temperature-from-voltage")
	require.Contains(t, string(out), "compression: zstd")

	again, err := ParseProfile(string(out))
	require.NoError(t, err)
	require.Equal(t, p, again)
}

package calibration

import (
	"fmt"
	"strings"

	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/regression"
)

// Reading is one bench measurement: a reference temperature in °C and the
// sensor output in volts.
type Reading struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Voltage     float64 `json:"voltage" yaml:"voltage"`
}

// Direction selects which quantity of a Reading is the independent variable.
type Direction uint8

const (
	// VoltageFromTemperature fits V(T): x is temperature, y is voltage.
	VoltageFromTemperature Direction = 0x1
	// TemperatureFromVoltage fits T(V): x is voltage, y is temperature.
	TemperatureFromVoltage Direction = 0x2
)

func (d Direction) String() string {
	switch d {
	case VoltageFromTemperature:
		return "voltage-from-temperature"
	case TemperatureFromVoltage:
		return "temperature-from-voltage"
	default:
		return "unknown"
	}
}

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == VoltageFromTemperature || d == TemperatureFromVoltage
}

// Variables returns the names of the independent and dependent variables.
func (d Direction) Variables() (x, y string) {
	if d == TemperatureFromVoltage {
		return "V", "T"
	}

	return "T", "V"
}

// Sample maps a reading onto the (x, y) pair of the direction.
func (d Direction) Sample(r Reading) regression.Sample {
	if d == TemperatureFromVoltage {
		return regression.Sample{X: r.Voltage, Y: r.Temperature}
	}

	return regression.Sample{X: r.Temperature, Y: r.Voltage}
}

// Samples maps readings onto a dataset in the same order.
func (d Direction) Samples(readings []Reading) regression.Dataset {
	ds := make(regression.Dataset, len(readings))
	for i, r := range readings {
		ds[i] = d.Sample(r)
	}

	return ds
}

// ParseDirection accepts the String form of a direction, with '_' or '-' as the
// separator, or the short forms "v(t)" and "t(v)".
func ParseDirection(s string) (Direction, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	switch norm {
	case "voltage-from-temperature", "v(t)":
		return VoltageFromTemperature, nil
	case "temperature-from-voltage", "t(v)":
		return TemperatureFromVoltage, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownDirection, uint8(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

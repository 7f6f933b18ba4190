package calibration

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/calfit/errs"
	"github.com/arloliu/calfit/format"
	"github.com/arloliu/calfit/internal/options"
)

// Profile is a saved calibration run configuration.
//
// Example:
//
//	sensor: pt100-bench-a
//	direction: voltage-from-temperature
//	degree: 2
//	curve:
//	  points: 300
//	  margin: 2.0
//	archive:
//	  compression: zstd
type Profile struct {
	Sensor    string         `yaml:"sensor"`
	Direction Direction      `yaml:"direction"`
	Degree    int            `yaml:"degree"`
	Rcond     float64        `yaml:"rcond,omitempty"`
	Curve     CurveProfile   `yaml:"curve"`
	Archive   ArchiveProfile `yaml:"archive"`
}

// CurveProfile configures the fitted curve grid.
type CurveProfile struct {
	Points int     `yaml:"points"`
	Margin float64 `yaml:"margin"`
}

// ArchiveProfile configures how the calibration record is stored.
type ArchiveProfile struct {
	Compression format.CompressionType `yaml:"compression"`
}

// DefaultProfile returns the profile equivalent to calling Calibrate without options.
func DefaultProfile() Profile {
	return Profile{
		Direction: VoltageFromTemperature,
		Degree:    DefaultDegree,
		Curve:     CurveProfile{Points: DefaultCurvePoints, Margin: DefaultCurveMargin},
		Archive:   ArchiveProfile{Compression: format.CompressionNone},
	}
}

// LoadProfile decodes a YAML profile. Fields that are absent keep their
// DefaultProfile values; unknown fields are rejected.
func LoadProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Profile{}, fmt.Errorf("decode calibration profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

// ParseProfile decodes a YAML profile held in a string.
func ParseProfile(s string) (Profile, error) {
	return LoadProfile(strings.NewReader(s))
}

// Validate checks the profile with the same rules Calibrate applies to its options.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Sensor) == "" {
		return fmt.Errorf("%w: empty sensor name", errs.ErrInvalidSensorName)
	}
	if !p.Archive.Compression.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, uint8(p.Archive.Compression))
	}

	_, err := options.Build(defaultConfig(), p.Options()...)

	return err
}

// Options converts the profile into Calibrate options.
func (p Profile) Options() []Option {
	return []Option{
		WithDirection(p.Direction),
		WithDegree(p.Degree),
		WithRcond(p.Rcond),
		WithCurve(p.Curve.Points, p.Curve.Margin),
	}
}

// Marshal encodes the profile as YAML.
func (p Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

package archive

import (
	"time"

	"github.com/arloliu/calfit/calibration"
	"github.com/arloliu/calfit/internal/hash"
	"github.com/arloliu/calfit/regression"
)

// Record is a persisted calibration: the fitted polynomial together with the
// readings it was fitted on and validated against.
type Record struct {
	// Sensor names the calibrated sensor.
	Sensor string
	// Direction is the fit direction of Coefficients.
	Direction calibration.Direction
	// Coefficients holds the fitted polynomial, constant term first.
	Coefficients regression.Coefficients
	// Training holds the samples the polynomial was fitted on.
	Training regression.Dataset
	// Validation holds the held-out samples, possibly empty.
	Validation regression.Dataset
	// CreatedAt is stored with microsecond precision.
	CreatedAt time.Time
}

// NewRecord builds a record from a calibration report.
func NewRecord(sensor string, rep *calibration.Report, createdAt time.Time) *Record {
	return &Record{
		Sensor:       sensor,
		Direction:    rep.Direction,
		Coefficients: rep.Coefficients.Clone(),
		Training:     rep.TrainingSamples.Clone(),
		Validation:   rep.ValidationSamples.Clone(),
		CreatedAt:    createdAt,
	}
}

// SensorID returns the xxHash64 identifier of the sensor name.
func (r *Record) SensorID() uint64 {
	return hash.ID(r.Sensor)
}

// Degree returns the polynomial degree.
func (r *Record) Degree() int {
	return r.Coefficients.Degree()
}

// Fingerprint identifies the training set, matching calibration.Report.Fingerprint.
func (r *Record) Fingerprint() uint64 {
	return Fingerprint(r.Training)
}

// Evaluate recomputes the training and validation residuals of the stored
// polynomial. The validation report is nil when the record has no validation set.
func (r *Record) Evaluate() (training, validation *regression.ResidualReport, err error) {
	if training, err = regression.EvaluateResiduals(r.Coefficients, r.Training); err != nil {
		return nil, nil, err
	}
	if len(r.Validation) > 0 {
		if validation, err = regression.EvaluateResiduals(r.Coefficients, r.Validation); err != nil {
			return nil, nil, err
		}
	}

	return training, validation, nil
}

// Fingerprint hashes a dataset by the bit patterns of its values.
func Fingerprint(ds regression.Dataset) uint64 {
	return hash.Fingerprint(ds.Xs(), ds.Ys())
}

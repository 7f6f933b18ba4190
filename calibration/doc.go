// Package calibration turns bench readings of a temperature sensor into a fitted
// calibration polynomial.
//
// A calibration run pairs known temperatures with the sensor's output voltage.
// The readings are split into a training set, which the polynomial is fitted to,
// and an optional validation set of held-out readings used to judge the fit:
//
//	train := []calibration.Reading{
//	    {Temperature: 23.6, Voltage: 2.688}, {Temperature: 42.7, Voltage: 2.727},
//	    {Temperature: 46.5, Voltage: 2.732}, {Temperature: 60.8, Voltage: 2.781},
//	    {Temperature: 81.5, Voltage: 2.864},
//	}
//
//	report, err := calibration.Calibrate(train, validation,
//	    calibration.WithDegree(2),
//	    calibration.WithLogger(logger),
//	)
//
// The fit direction decides which quantity is the independent variable.
// VoltageFromTemperature models V(T), the sensor's response curve.
// TemperatureFromVoltage models T(V), the form a thermometer needs at runtime.
//
// The Report exposes the fitted Curve and per-sample Rows for plotting and
// tabulation layers; this package renders nothing itself.
//
// Run settings may also be loaded from a YAML Profile.
package calibration

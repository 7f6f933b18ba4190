package regression_test

import (
	"fmt"
	"log"

	"github.com/arloliu/calfit/regression"
)

// ExampleFit fits a quadratic through noiseless samples and recovers it.
func ExampleFit() {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 6, 17, 34} // y = 1 + 2x + 3x²

	samples, err := regression.NewDataset(xs, ys)
	if err != nil {
		log.Fatal(err)
	}

	coeffs, err := regression.Fit(samples, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Coefficients: %.3f %.3f %.3f\n", coeffs[0], coeffs[1], coeffs[2])
	fmt.Printf("Formula: %s\n", coeffs)
	fmt.Printf("Predict(4): %.3f\n", regression.Predict(coeffs, 4))

	// Output:
	// Coefficients: 1.000 2.000 3.000
	// Formula: y = 1 + 2*x + 3*x^2
	// Predict(4): 57.000
}

// ExampleEvaluateResiduals scores a fixed line against observations.
func ExampleEvaluateResiduals() {
	coeffs := regression.Coefficients{1, 1}
	samples := regression.Dataset{{X: 0, Y: 1}, {X: 1, Y: 2.5}, {X: 2, Y: 2}, {X: 3, Y: 4}}

	rep, err := regression.EvaluateResiduals(coeffs, samples)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Residuals:", rep.Residuals)
	fmt.Printf("MSE: %.4f\n", rep.MSE)
	fmt.Printf("Max |error|: %.1f\n", rep.MaxAbsError)

	// Output:
	// Residuals: [0 0.5 -1 0]
	// MSE: 0.3125
	// Max |error|: 1.0
}

// ExampleCompare picks the degree that generalizes best to held-out readings.
func ExampleCompare() {
	train := regression.Dataset{
		{X: 23.6, Y: 2.688}, {X: 42.7, Y: 2.727}, {X: 46.5, Y: 2.732},
		{X: 60.8, Y: 2.781}, {X: 81.5, Y: 2.864},
	}
	validation := regression.Dataset{{X: 30.1, Y: 2.700}, {X: 55.2, Y: 2.762}, {X: 72.9, Y: 2.826}}

	res, err := regression.Compare(train, validation, []int{1, 2, 3})
	if err != nil {
		log.Fatal(err)
	}

	for _, m := range res.AllModels {
		fmt.Printf("degree %d: validation MSE %.2e\n", m.Degree, m.Evaluation.MSE)
	}

	// Output:
	// degree 2: validation MSE 1.53e-06
	// degree 3: validation MSE 2.40e-06
	// degree 1: validation MSE 4.10e-05
}

// Package metrics provides goodness-of-fit measures for regression models.
package metrics

import (
	"math"

	"github.com/statgo-dev/linreg/pkg/errors"
)

// MSE computes the mean squared error between observed and fitted values.
func MSE(observed, fitted []float64) (float64, error) {
	n := len(observed)
	if n == 0 {
		return 0, errors.New("metrics: MSE of empty vectors")
	}
	if len(fitted) != n {
		return 0, errors.NewDimensionMismatchError("metrics.MSE", len(fitted), n)
	}

	var sum float64
	for i := range observed {
		diff := observed[i] - fitted[i]
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error.
func RMSE(observed, fitted []float64) (float64, error) {
	mse, err := MSE(observed, fitted)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error.
func MAE(observed, fitted []float64) (float64, error) {
	n := len(observed)
	if n == 0 {
		return 0, errors.New("metrics: MAE of empty vectors")
	}
	if len(fitted) != n {
		return 0, errors.NewDimensionMismatchError("metrics.MAE", len(fitted), n)
	}

	var sum float64
	for i := range observed {
		sum += math.Abs(observed[i] - fitted[i])
	}
	return sum / float64(n), nil
}

// R2 computes the coefficient of determination, 1 − RSS/TSS. It fails when
// the observed values have no variation (TSS = 0).
func R2(observed, fitted []float64) (float64, error) {
	n := len(observed)
	if n == 0 {
		return 0, errors.New("metrics: R2 of empty vectors")
	}
	if len(fitted) != n {
		return 0, errors.NewDimensionMismatchError("metrics.R2", len(fitted), n)
	}

	var mean float64
	for _, v := range observed {
		mean += v
	}
	mean /= float64(n)

	var tss, rss float64
	for i := range observed {
		d := observed[i] - mean
		tss += d * d
		r := observed[i] - fitted[i]
		rss += r * r
	}
	if tss == 0 {
		return 0, errors.New("metrics: R2 undefined, observed values have no variation")
	}
	return 1 - rss/tss, nil
}

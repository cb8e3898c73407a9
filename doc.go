// Package linreg provides ordinary least squares linear regression for Go,
// from an R-style formula down to inferential diagnostics and diagnostic
// plots.
//
// # Features
//
// - Closed-form OLS fit via a Cholesky solve of the normal equations
// - Coefficient standard errors, t-statistics, and two-sided p-values
// - R-flavored print and summary text forms with significance markers
// - Residuals-vs-fitted and scale-location diagnostic plot descriptors
// - Typed, distinguishable errors for every failure mode
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/statgo-dev/linreg/dataset"
//	    "github.com/statgo-dev/linreg/formula"
//	    "github.com/statgo-dev/linreg/linear"
//	)
//
//	func main() {
//	    ds := dataset.New("cars")
//	    _ = ds.AddColumn("speed", []float64{4, 7, 8, 9, 10})
//	    _ = ds.AddColumn("dist", []float64{2, 4, 16, 10, 18})
//
//	    f, err := formula.Parse("dist ~ speed")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    X, y, names, err := f.BuildMatrices(ds)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := linear.Fit(X, y, names, f.Text, ds.Name())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(model.SummaryString())
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - linear: the OLS fit engine, diagnostics, presenter, and plot descriptors
//   - formula: R-style formula parsing and design-matrix building
//   - dataset: named, row-aligned numeric columns
//   - plotting: gonum/plot rendering for the diagnostic descriptors
//   - metrics: goodness-of-fit measures (MSE, RMSE, MAE, R²)
package linreg

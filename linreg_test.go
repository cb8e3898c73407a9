package linreg_test

import (
	"math"
	"strings"
	"testing"

	"github.com/statgo-dev/linreg/dataset"
	"github.com/statgo-dev/linreg/formula"
	"github.com/statgo-dev/linreg/linear"
	"github.com/statgo-dev/linreg/metrics"
)

// End to end: dataset → formula → fit → summary → plots.
func TestFormulaToSummary(t *testing.T) {
	ds := dataset.New("growth")
	if err := ds.AddColumn("day", []float64{1, 2, 3, 4, 5, 6}); err != nil {
		t.Fatal(err)
	}
	if err := ds.AddColumn("height", []float64{2.2, 4.1, 5.9, 8.3, 9.8, 12.1}); err != nil {
		t.Fatal(err)
	}

	f, err := formula.Parse("height ~ day")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	X, y, names, err := f.BuildMatrices(ds)
	if err != nil {
		t.Fatalf("BuildMatrices failed: %v", err)
	}

	model, err := linear.Fit(X, y, names, f.Text, ds.Name())
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if model.DegreesOfFreedom != 4 {
		t.Errorf("Expected 4 degrees of freedom, got %d", model.DegreesOfFreedom)
	}
	if math.Abs(model.Coefficients[1]-1.97142857143) > 1e-6 {
		t.Errorf("Unexpected slope %g", model.Coefficients[1])
	}

	summary := model.SummaryString()
	if !strings.Contains(summary, "linreg(formula = height ~ day, data = growth)") {
		t.Errorf("Summary missing header:\n%s", summary)
	}
	if !strings.Contains(summary, "degrees of freedom!") {
		t.Errorf("Summary missing closing line:\n%s", summary)
	}

	observed, err := ds.Column("height")
	if err != nil {
		t.Fatal(err)
	}
	r2, err := metrics.R2(observed, model.FittedValues)
	if err != nil {
		t.Fatalf("R2 failed: %v", err)
	}
	if r2 < 0.99 {
		t.Errorf("Expected near-perfect R2 for near-linear data, got %g", r2)
	}

	plots := model.DiagnosticPlots()
	if len(plots) != 2 || plots[0].Title != "Residuals vs Fitted" {
		t.Errorf("Unexpected diagnostic plots: %+v", plots)
	}
}

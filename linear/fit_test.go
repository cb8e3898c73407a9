package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/statgo-dev/linreg/pkg/errors"
)

const tol = 1e-9

// withIntercept builds a design matrix with a leading column of ones.
func withIntercept(xs []float64) *mat.Dense {
	n := len(xs)
	X := mat.NewDense(n, 2, nil)
	for i, x := range xs {
		X.Set(i, 0, 1)
		X.Set(i, 1, x)
	}
	return X
}

func TestFit_ExactLineRecovery(t *testing.T) {
	// y = 2x exactly, fitted with an intercept.
	X := withIntercept([]float64{1, 2, 3})
	y := mat.NewVecDense(3, []float64{2, 4, 6})

	model, err := Fit(X, y, []string{"(Intercept)", "x"}, "y ~ x", "line")
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if math.Abs(model.Coefficients[0]-0) > tol {
		t.Errorf("Expected intercept 0, got %g", model.Coefficients[0])
	}
	if math.Abs(model.Coefficients[1]-2) > tol {
		t.Errorf("Expected slope 2, got %g", model.Coefficients[1])
	}
	for i, r := range model.Residuals {
		if math.Abs(r) > tol {
			t.Errorf("Expected residual[%d] 0, got %g", i, r)
		}
	}
	for i, f := range model.FittedValues {
		if math.Abs(f-y.AtVec(i)) > tol {
			t.Errorf("Expected fitted[%d] %g, got %g", i, y.AtVec(i), f)
		}
	}
	if model.DegreesOfFreedom != 1 {
		t.Errorf("Expected 1 degree of freedom, got %d", model.DegreesOfFreedom)
	}
}

func TestFit_ResidualIdentity(t *testing.T) {
	X := withIntercept([]float64{1, 2, 3, 4, 5, 6})
	y := mat.NewVecDense(6, []float64{1.2, 1.9, 3.4, 3.6, 5.5, 5.8})

	model, err := Fit(X, y, []string{"(Intercept)", "x"}, "y ~ x", "noisy")
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	for i := range model.FittedValues {
		got := model.FittedValues[i] + model.Residuals[i]
		if math.Abs(got-y.AtVec(i)) > tol {
			t.Errorf("fitted+residual at %d: expected %g, got %g", i, y.AtVec(i), got)
		}
	}
}

func TestFit_ZeroMeanResidualsWithIntercept(t *testing.T) {
	X := withIntercept([]float64{1, 2, 3, 4, 5})
	y := mat.NewVecDense(5, []float64{2.1, 3.9, 6.2, 7.8, 10.1})

	model, err := Fit(X, y, []string{"(Intercept)", "x"}, "y ~ x", "noisy")
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	var sum float64
	for _, r := range model.Residuals {
		sum += r
	}
	if math.Abs(sum) > 1e-8 {
		t.Errorf("Expected zero-sum residuals with intercept, got %g", sum)
	}
}

func TestFit_DegreesOfFreedom(t *testing.T) {
	X := mat.NewDense(5, 3, []float64{
		1, 1, 2,
		1, 2, 1,
		1, 3, 5,
		1, 4, 2,
		1, 5, 7,
	})
	y := mat.NewVecDense(5, []float64{1, 2, 3, 4, 5})

	model, err := Fit(X, y, []string{"(Intercept)", "a", "b"}, "y ~ a + b", "d")
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if model.DegreesOfFreedom != 2 {
		t.Errorf("Expected df = n - p = 2, got %d", model.DegreesOfFreedom)
	}
}

func TestFit_FewerObservationsThanParameters(t *testing.T) {
	X := mat.NewDense(2, 3, []float64{
		1, 1, 2,
		1, 2, 1,
	})
	y := mat.NewVecDense(2, []float64{1, 2})

	_, err := Fit(X, y, []string{"(Intercept)", "a", "b"}, "y ~ a + b", "tiny")
	if err == nil {
		t.Fatal("Expected error for n < p")
	}
	var dimErr *errors.DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("Expected DimensionMismatchError, got %T: %v", err, err)
	}
}

func TestFit_SingularDesignMatrix(t *testing.T) {
	// Two identical predictor columns: perfectly collinear.
	X := mat.NewDense(4, 3, []float64{
		1, 2, 2,
		1, 3, 3,
		1, 4, 4,
		1, 5, 5,
	})
	y := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	_, err := Fit(X, y, []string{"(Intercept)", "a", "a2"}, "y ~ a + a2", "collinear")
	if err == nil {
		t.Fatal("Expected error for singular design matrix")
	}
	var singErr *errors.SingularDesignMatrixError
	if !errors.As(err, &singErr) {
		t.Fatalf("Expected SingularDesignMatrixError, got %T: %v", err, err)
	}
}

func TestFit_DegenerateDegreesOfFreedom(t *testing.T) {
	// Two observations, two parameters: the fit is exact and the residual
	// variance is undefined.
	X := withIntercept([]float64{1, 2})
	y := mat.NewVecDense(2, []float64{3, 5})

	_, err := Fit(X, y, []string{"(Intercept)", "x"}, "y ~ x", "degenerate")
	if err == nil {
		t.Fatal("Expected error for zero degrees of freedom")
	}
	var dfErr *errors.DegenerateDegreesOfFreedomError
	if !errors.As(err, &dfErr) {
		t.Fatalf("Expected DegenerateDegreesOfFreedomError, got %T: %v", err, err)
	}
	if dfErr.Observations != 2 || dfErr.Parameters != 2 {
		t.Errorf("Expected 2 observations and 2 parameters in error, got %d and %d",
			dfErr.Observations, dfErr.Parameters)
	}
}

func TestFit_ResponseLengthMismatch(t *testing.T) {
	X := withIntercept([]float64{1, 2, 3})
	y := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	_, err := Fit(X, y, []string{"(Intercept)", "x"}, "y ~ x", "misaligned")
	var dimErr *errors.DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("Expected DimensionMismatchError, got %T: %v", err, err)
	}
}

func TestFit_ParameterNameCountMismatch(t *testing.T) {
	X := withIntercept([]float64{1, 2, 3})
	y := mat.NewVecDense(3, []float64{1, 2, 3})

	_, err := Fit(X, y, []string{"x"}, "y ~ x", "misnamed")
	var malErr *errors.MalformedDatasetError
	if !errors.As(err, &malErr) {
		t.Fatalf("Expected MalformedDatasetError, got %T: %v", err, err)
	}
}

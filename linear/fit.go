package linear

import (
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/statgo-dev/linreg/pkg/errors"
	"github.com/statgo-dev/linreg/pkg/log"
)

// Fit solves the normal equations for the design matrix X (n×p) and
// response y (length n) and derives the full set of diagnostics. names
// labels the columns of X; formulaText and datasetLabel are carried into
// the Model for presentation.
//
// The solve factorizes XᵀX with a Cholesky decomposition instead of
// forming an explicit inverse on the solution path. Failure modes:
//
//   - n < p: DimensionMismatchError, detected before any solve.
//   - XᵀX singular or too ill-conditioned: SingularDesignMatrixError.
//   - n == p: DegenerateDegreesOfFreedomError; the residual variance
//     would be 0/0 and NaN is never propagated.
//
// On any error no partial Model is returned.
func Fit(X mat.Matrix, y *mat.VecDense, names []string, formulaText, datasetLabel string) (*Model, error) {
	const op = "linear.Fit"
	start := time.Now()

	n, p := X.Dims()
	if n == 0 || p == 0 {
		return nil, errors.NewMalformedDatasetError(datasetLabel, "empty design matrix")
	}
	if y.Len() != n {
		return nil, errors.NewDimensionMismatchError(op, y.Len(), n)
	}
	if len(names) != p {
		return nil, errors.NewMalformedDatasetError(datasetLabel,
			"parameter names do not match design matrix columns")
	}
	if n < p {
		return nil, errors.NewDimensionMismatchError(op, n, p)
	}

	logger := log.GetLogger().With(log.ModelNameKey, "linreg")
	logger.Debug("fitting model",
		log.OperationKey, "fit",
		log.FormulaKey, formulaText,
		log.DatasetKey, datasetLabel,
		log.ObservationsKey, n,
		log.ParametersKey, p,
	)

	coef, xtxInv, err := solveNormalEquations(X, y)
	if err != nil {
		return nil, err
	}

	var fittedVec mat.VecDense
	fittedVec.MulVec(X, coef)

	var residVec mat.VecDense
	residVec.SubVec(y, &fittedVec)

	df := n - p

	diag, err := computeDiagnostics(df, n, p, coef, &residVec, xtxInv)
	if err != nil {
		return nil, err
	}

	model := &Model{
		Formula:              formulaText,
		Dataset:              datasetLabel,
		ParameterNames:       append([]string(nil), names...),
		Coefficients:         vecToSlice(coef),
		FittedValues:         vecToSlice(&fittedVec),
		Residuals:            vecToSlice(&residVec),
		DegreesOfFreedom:     df,
		ResidualVariance:     diag.residualVariance,
		CoefficientVariances: diag.variances,
		StandardErrors:       diag.standardErrors,
		TValues:              diag.tValues,
		PValues:              diag.pValues,
	}

	logger.Debug("model fitted",
		log.OperationKey, "fit",
		log.DegreesOfFreedomKey, df,
		log.DurationKey, time.Since(start),
	)
	return model, nil
}

// solveNormalEquations computes (XᵀX)⁻¹Xᵀy via Cholesky factorization of
// XᵀX and returns both the coefficient vector and (XᵀX)⁻¹, which the
// diagnostics need for the coefficient variances.
func solveNormalEquations(X mat.Matrix, y *mat.VecDense) (*mat.VecDense, *mat.SymDense, error) {
	const op = "linear.Fit"

	_, p := X.Dims()

	var xt mat.Dense
	xt.CloneFrom(X.T())

	var xtx mat.Dense
	xtx.Mul(&xt, X)

	// XᵀX is symmetric by construction; copy into a SymDense so the
	// Cholesky factorization applies.
	sym := mat.NewSymDense(p, nil)
	for i := 0; i < p; i++ {
		for j := i; j < p; j++ {
			sym.SetSym(i, j, xtx.At(i, j))
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, nil, errors.NewSingularDesignMatrixError(op, true, nil)
	}

	var xty mat.VecDense
	xty.MulVec(&xt, y)

	coef := mat.NewVecDense(p, nil)
	if err := chol.SolveVecTo(coef, &xty); err != nil {
		return nil, nil, errors.NewSingularDesignMatrixError(op, false, err)
	}

	var xtxInv mat.SymDense
	if err := chol.InverseTo(&xtxInv); err != nil {
		return nil, nil, errors.NewSingularDesignMatrixError(op, false, err)
	}

	// Backstop: an ill-conditioned factorization that slipped past the
	// checks above must not leak NaN or Inf coefficients.
	if err := errors.CheckFinite(op, vecToSlice(coef)); err != nil {
		return nil, nil, errors.NewSingularDesignMatrixError(op, false, err)
	}

	return coef, &xtxInv, nil
}

func vecToSlice(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.AtVec(i)
	}
	return out
}

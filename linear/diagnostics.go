package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statgo-dev/linreg/pkg/errors"
)

// diagnostics holds the inferential statistics derived from a completed
// solve. It never outlives Fit; its fields are copied into the Model.
type diagnostics struct {
	residualVariance float64
	variances        []float64
	standardErrors   []float64
	tValues          []float64
	pValues          []float64
}

// computeDiagnostics derives the residual variance, the diagonal of the
// coefficient covariance matrix, and the per-coefficient t and p values.
//
// Only the diagonal of residualVariance·(XᵀX)⁻¹ is extracted; the
// off-diagonal covariances are discarded and no downstream consumer can
// reach them.
func computeDiagnostics(df, n, p int, coef *mat.VecDense, resid *mat.VecDense, xtxInv *mat.SymDense) (*diagnostics, error) {
	if df == 0 {
		return nil, errors.NewDegenerateDegreesOfFreedomError(n, p)
	}

	rss := mat.Dot(resid, resid)
	sigma2 := rss / float64(df)

	variances := make([]float64, p)
	standardErrors := make([]float64, p)
	tValues := make([]float64, p)
	pValues := make([]float64, p)

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	for j := 0; j < p; j++ {
		variances[j] = sigma2 * xtxInv.At(j, j)
		standardErrors[j] = math.Sqrt(variances[j])
		tValues[j] = coef.AtVec(j) / standardErrors[j]
		// Two-sided test: 2·P(T > |t|) with df degrees of freedom.
		pValues[j] = 2 * tdist.Survival(math.Abs(tValues[j]))
	}

	return &diagnostics{
		residualVariance: sigma2,
		variances:        variances,
		standardErrors:   standardErrors,
		tValues:          tValues,
		pValues:          pValues,
	}, nil
}

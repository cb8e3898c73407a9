// Package linear implements ordinary least squares regression with the
// standard inferential diagnostics: residual variance, coefficient standard
// errors, t-statistics, and two-sided p-values against the Student's t
// distribution.
//
// The entry point is Fit, which takes an already-materialized design matrix
// and response vector (see the formula package for building those from a
// dataset) and returns an immutable Model or a typed error. A Model is a
// pure value: every field is computed during Fit and never mutated
// afterwards, so a constructed Model is safe to share across goroutines.
package linear

// Model is the result of an ordinary least squares fit. All fields are
// populated by Fit and must be treated as read-only.
type Model struct {
	// Formula is the formula text the model was fitted from, kept for
	// presentation only.
	Formula string

	// Dataset is the label of the dataset the model was fitted on.
	Dataset string

	// ParameterNames labels the design-matrix columns, one per coefficient.
	ParameterNames []string

	// Coefficients holds the normal-equations solution (XᵀX)⁻¹Xᵀy.
	Coefficients []float64

	// FittedValues is X·Coefficients, one value per observation.
	FittedValues []float64

	// Residuals is response minus FittedValues, elementwise.
	Residuals []float64

	// DegreesOfFreedom is observations minus parameters. Always positive:
	// Fit rejects n < p and n == p before a Model is built.
	DegreesOfFreedom int

	// ResidualVariance is the residual sum of squares divided by
	// DegreesOfFreedom.
	ResidualVariance float64

	// CoefficientVariances is the diagonal of ResidualVariance·(XᵀX)⁻¹.
	// Only the diagonal is retained; cross-coefficient covariances are
	// discarded and not recoverable from the Model.
	CoefficientVariances []float64

	// StandardErrors is the elementwise square root of CoefficientVariances.
	StandardErrors []float64

	// TValues is Coefficients divided elementwise by StandardErrors.
	TValues []float64

	// PValues holds the two-sided tail probabilities of TValues under the
	// Student's t distribution with DegreesOfFreedom degrees of freedom.
	PValues []float64
}

// NumParameters returns the number of fitted coefficients.
func (m *Model) NumParameters() int {
	return len(m.Coefficients)
}

// NumObservations returns the number of rows the model was fitted on.
func (m *Model) NumObservations() int {
	return len(m.FittedValues)
}

package log

// Standard attribute keys for regression operations. Using the same keys
// everywhere keeps the structured output filterable.
const (
	// ModelNameKey identifies the model type, e.g. "linreg".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed, e.g. "fit".
	OperationKey = "op"

	// FormulaKey carries the formula text the model was fitted from.
	FormulaKey = "model.formula"

	// DatasetKey carries the dataset label.
	DatasetKey = "data.name"

	// ObservationsKey is the number of rows in the design matrix.
	ObservationsKey = "data.observations"

	// ParametersKey is the number of design-matrix columns.
	ParametersKey = "model.parameters"

	// DegreesOfFreedomKey is observations minus parameters.
	DegreesOfFreedomKey = "model.degrees_of_freedom"

	// DurationKey is the elapsed wall time of an operation.
	DurationKey = "duration"
)

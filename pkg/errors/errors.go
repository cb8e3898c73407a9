// Package errors provides the error types used across linreg.
// Every condition that aborts a model fit has its own distinguishable type,
// so callers can branch on the failure kind with errors.As rather than
// matching message strings.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// DimensionMismatchError reports that the design matrix has fewer
// observations than parameters, or that two row-aligned inputs disagree
// on their length. No solve is attempted once this is detected.
type DimensionMismatchError struct {
	Op           string
	Observations int
	Parameters   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("linreg: %s: dimension mismatch: %d observations for %d parameters",
		e.Op, e.Observations, e.Parameters)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DimensionMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("observations", e.Observations).
		Int("parameters", e.Parameters).
		Str("type", "DimensionMismatchError")
}

// NewDimensionMismatchError creates a DimensionMismatchError with a stack trace.
func NewDimensionMismatchError(op string, observations, parameters int) error {
	err := &DimensionMismatchError{Op: op, Observations: observations, Parameters: parameters}
	return errors.WithStack(err)
}

// SingularDesignMatrixError reports that XᵀX could not be inverted.
// Exact is true when the factorization failed outright (perfectly collinear
// columns) and false when the matrix factorized but its condition number
// made the solve unreliable.
type SingularDesignMatrixError struct {
	Op    string
	Exact bool
	Cause error
}

func (e *SingularDesignMatrixError) Error() string {
	kind := "near-singular"
	if e.Exact {
		kind = "singular"
	}
	if e.Cause != nil {
		return fmt.Sprintf("linreg: %s: %s design matrix: %v", e.Op, kind, e.Cause)
	}
	return fmt.Sprintf("linreg: %s: %s design matrix (collinear predictors?)", e.Op, kind)
}

func (e *SingularDesignMatrixError) Unwrap() error {
	return e.Cause
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *SingularDesignMatrixError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Bool("exactly_singular", e.Exact).
		Str("type", "SingularDesignMatrixError")
}

// NewSingularDesignMatrixError creates a SingularDesignMatrixError with a stack trace.
func NewSingularDesignMatrixError(op string, exact bool, cause error) error {
	err := &SingularDesignMatrixError{Op: op, Exact: exact, Cause: cause}
	return errors.WithStack(err)
}

// DegenerateDegreesOfFreedomError reports n == p: the fit is exact by
// construction and the residual variance is undefined. The fit never
// propagates the resulting NaN; it fails with this error instead.
type DegenerateDegreesOfFreedomError struct {
	Observations int
	Parameters   int
}

func (e *DegenerateDegreesOfFreedomError) Error() string {
	return fmt.Sprintf("linreg: zero degrees of freedom: %d observations, %d parameters; residual variance is undefined",
		e.Observations, e.Parameters)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DegenerateDegreesOfFreedomError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("observations", e.Observations).
		Int("parameters", e.Parameters).
		Str("type", "DegenerateDegreesOfFreedomError")
}

// NewDegenerateDegreesOfFreedomError creates a DegenerateDegreesOfFreedomError
// with a stack trace.
func NewDegenerateDegreesOfFreedomError(observations, parameters int) error {
	err := &DegenerateDegreesOfFreedomError{Observations: observations, Parameters: parameters}
	return errors.WithStack(err)
}

// MissingResponseColumnError reports that the formula names a response
// variable the dataset does not carry.
type MissingResponseColumnError struct {
	Column  string
	Dataset string
}

func (e *MissingResponseColumnError) Error() string {
	return fmt.Sprintf("linreg: dataset %q has no column %q", e.Dataset, e.Column)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *MissingResponseColumnError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("dataset", e.Dataset).
		Str("type", "MissingResponseColumnError")
}

// NewMissingResponseColumnError creates a MissingResponseColumnError with a stack trace.
func NewMissingResponseColumnError(column, dataset string) error {
	err := &MissingResponseColumnError{Column: column, Dataset: dataset}
	return errors.WithStack(err)
}

// MalformedDatasetError reports structural problems in the input data:
// ragged columns, empty datasets, or parameter-name lists that do not
// match the design matrix.
type MalformedDatasetError struct {
	Dataset string
	Reason  string
}

func (e *MalformedDatasetError) Error() string {
	return fmt.Sprintf("linreg: malformed dataset %q: %s", e.Dataset, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *MalformedDatasetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("dataset", e.Dataset).
		Str("reason", e.Reason).
		Str("type", "MalformedDatasetError")
}

// NewMalformedDatasetError creates a MalformedDatasetError with a stack trace.
func NewMalformedDatasetError(dataset, reason string) error {
	err := &MalformedDatasetError{Dataset: dataset, Reason: reason}
	return errors.WithStack(err)
}

// FormulaSyntaxError reports a formula string the parser could not
// understand.
type FormulaSyntaxError struct {
	Formula string
	Reason  string
}

func (e *FormulaSyntaxError) Error() string {
	return fmt.Sprintf("linreg: cannot parse formula %q: %s", e.Formula, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *FormulaSyntaxError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("formula", e.Formula).
		Str("reason", e.Reason).
		Str("type", "FormulaSyntaxError")
}

// NewFormulaSyntaxError creates a FormulaSyntaxError with a stack trace.
func NewFormulaSyntaxError(formula, reason string) error {
	err := &FormulaSyntaxError{Formula: formula, Reason: reason}
	return errors.WithStack(err)
}

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an existing error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

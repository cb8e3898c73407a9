package errors

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// NonFiniteError reports that a computation produced NaN or Inf where a
// finite value was required. It is the backstop behind the singularity
// checks: an ill-conditioned solve must surface as an error, never as
// silent NaN coefficients.
type NonFiniteError struct {
	Op     string
	Values []float64
}

func (e *NonFiniteError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("linreg: %s: non-finite result: [%s]", e.Op, valStr)
}

// NewNonFiniteError creates a NonFiniteError with a stack trace.
func NewNonFiniteError(op string, values []float64) error {
	err := &NonFiniteError{Op: op, Values: values}
	return errors.WithStack(err)
}

// CheckFinite returns a NonFiniteError if any value is NaN or infinite.
func CheckFinite(op string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNonFiniteError(op, values)
		}
	}
	return nil
}

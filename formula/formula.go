// Package formula parses R-style model formulas and materializes design
// matrices from datasets.
//
// A formula has the shape "response ~ predictor1 + predictor2". An
// intercept column is included by default; "response ~ 0 + x" or
// "response ~ x - 1" drops it.
package formula

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/statgo-dev/linreg/dataset"
	"github.com/statgo-dev/linreg/internal/parallel"
	"github.com/statgo-dev/linreg/pkg/errors"
)

// InterceptName labels the intercept column in the design matrix.
const InterceptName = "(Intercept)"

// Rows below this count are filled sequentially.
const parallelThreshold = 1000

// Formula is a parsed model specification.
type Formula struct {
	Text       string
	Response   string
	Predictors []string
	Intercept  bool
}

// Option adjusts how a formula is interpreted.
type Option func(*Formula)

// WithIntercept overrides the intercept choice encoded in the formula text.
func WithIntercept(include bool) Option {
	return func(f *Formula) {
		f.Intercept = include
	}
}

// Parse parses a formula string.
func Parse(text string, opts ...Option) (*Formula, error) {
	parts := strings.Split(text, "~")
	if len(parts) != 2 {
		return nil, errors.NewFormulaSyntaxError(text, "expected exactly one '~'")
	}

	response := strings.TrimSpace(parts[0])
	if response == "" {
		return nil, errors.NewFormulaSyntaxError(text, "missing response variable")
	}

	f := &Formula{Text: text, Response: response, Intercept: true}

	rhs := strings.TrimSpace(parts[1])
	if rhs == "" {
		return nil, errors.NewFormulaSyntaxError(text, "missing predictors")
	}

	// "- 1" anywhere on the right-hand side drops the intercept.
	if idx := strings.Index(rhs, "-"); idx >= 0 {
		tail := strings.TrimSpace(rhs[idx+1:])
		if tail != "1" {
			return nil, errors.NewFormulaSyntaxError(text, "only '- 1' may follow '-'")
		}
		f.Intercept = false
		rhs = strings.TrimSpace(rhs[:idx])
	}

	for _, term := range strings.Split(rhs, "+") {
		term = strings.TrimSpace(term)
		switch term {
		case "":
			return nil, errors.NewFormulaSyntaxError(text, "empty predictor term")
		case "0":
			f.Intercept = false
		case "1":
			f.Intercept = true
		default:
			f.Predictors = append(f.Predictors, term)
		}
	}
	if len(f.Predictors) == 0 {
		return nil, errors.NewFormulaSyntaxError(text, "no predictor variables")
	}

	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// BuildMatrices materializes the design matrix, response vector, and
// parameter names from the dataset. The intercept column, when present,
// comes first and is named "(Intercept)".
func (f *Formula) BuildMatrices(ds *dataset.Dataset) (*mat.Dense, *mat.VecDense, []string, error) {
	n := ds.NumRows()
	if n == 0 {
		return nil, nil, nil, errors.NewMalformedDatasetError(ds.Name(), "dataset has no rows")
	}

	response, err := ds.Column(f.Response)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := errors.CheckFinite("formula.BuildMatrices: response "+f.Response, response); err != nil {
		return nil, nil, nil, err
	}

	predictors := make([][]float64, len(f.Predictors))
	for i, name := range f.Predictors {
		col, err := ds.Column(name)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := errors.CheckFinite("formula.BuildMatrices: predictor "+name, col); err != nil {
			return nil, nil, nil, err
		}
		predictors[i] = col
	}

	offset := 0
	p := len(f.Predictors)
	if f.Intercept {
		p++
		offset = 1
	}

	names := make([]string, 0, p)
	if f.Intercept {
		names = append(names, InterceptName)
	}
	names = append(names, f.Predictors...)

	x := mat.NewDense(n, p, nil)
	parallel.ForWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			if f.Intercept {
				x.Set(i, 0, 1.0)
			}
			for j, col := range predictors {
				x.Set(i, j+offset, col[i])
			}
		}
	})

	y := mat.NewVecDense(n, response)
	return x, y, names, nil
}

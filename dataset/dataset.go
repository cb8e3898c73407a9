// Package dataset provides the tabular input to the formula builder: a
// labeled collection of named, row-aligned float64 columns.
package dataset

import (
	"fmt"

	"github.com/statgo-dev/linreg/pkg/errors"
)

// Dataset is a named table of equal-length numeric columns. Categorical
// variables are expected to be encoded to numbers before they reach the
// dataset; this type stores only float64 values.
type Dataset struct {
	name    string
	order   []string
	columns map[string][]float64
	rows    int
}

// New creates an empty dataset with the given label. The label appears in
// model print and summary headers.
func New(name string) *Dataset {
	return &Dataset{
		name:    name,
		columns: make(map[string][]float64),
	}
}

// FromColumns creates a dataset from a column map, adding columns in the
// order given by names. Every named column must exist in the map and all
// columns must have the same length.
func FromColumns(name string, names []string, columns map[string][]float64) (*Dataset, error) {
	ds := New(name)
	for _, col := range names {
		values, ok := columns[col]
		if !ok {
			return nil, errors.NewMalformedDatasetError(name, fmt.Sprintf("column %q named but not provided", col))
		}
		if err := ds.AddColumn(col, values); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Name returns the dataset label.
func (ds *Dataset) Name() string {
	return ds.name
}

// NumRows returns the row count. Zero for an empty dataset.
func (ds *Dataset) NumRows() int {
	return ds.rows
}

// ColumnNames returns the column names in insertion order.
func (ds *Dataset) ColumnNames() []string {
	out := make([]string, len(ds.order))
	copy(out, ds.order)
	return out
}

// AddColumn appends a column. The first column fixes the row count; later
// columns must match it, and duplicate names are rejected.
func (ds *Dataset) AddColumn(name string, values []float64) error {
	if _, exists := ds.columns[name]; exists {
		return errors.NewMalformedDatasetError(ds.name, fmt.Sprintf("duplicate column %q", name))
	}
	if len(ds.order) == 0 {
		ds.rows = len(values)
	} else if len(values) != ds.rows {
		return errors.NewMalformedDatasetError(ds.name,
			fmt.Sprintf("column %q has %d rows, want %d", name, len(values), ds.rows))
	}

	stored := make([]float64, len(values))
	copy(stored, values)
	ds.columns[name] = stored
	ds.order = append(ds.order, name)
	return nil
}

// Column returns a copy of the named column, or a MissingResponseColumnError
// if the dataset does not carry it.
func (ds *Dataset) Column(name string) ([]float64, error) {
	values, ok := ds.columns[name]
	if !ok {
		return nil, errors.NewMissingResponseColumnError(name, ds.name)
	}
	out := make([]float64, len(values))
	copy(out, values)
	return out, nil
}

// HasColumn reports whether the dataset carries the named column.
func (ds *Dataset) HasColumn(name string) bool {
	_, ok := ds.columns[name]
	return ok
}

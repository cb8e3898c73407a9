package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statgo-dev/linreg/pkg/errors"
)

func TestAddColumn_RaggedRejected(t *testing.T) {
	ds := New("d")
	require.NoError(t, ds.AddColumn("a", []float64{1, 2, 3}))

	err := ds.AddColumn("b", []float64{1, 2})
	require.Error(t, err)
	var malErr *errors.MalformedDatasetError
	assert.True(t, errors.As(err, &malErr))
}

func TestAddColumn_DuplicateRejected(t *testing.T) {
	ds := New("d")
	require.NoError(t, ds.AddColumn("a", []float64{1}))

	err := ds.AddColumn("a", []float64{2})
	var malErr *errors.MalformedDatasetError
	assert.True(t, errors.As(err, &malErr))
}

func TestColumn_Missing(t *testing.T) {
	ds := New("d")
	require.NoError(t, ds.AddColumn("a", []float64{1}))

	_, err := ds.Column("b")
	require.Error(t, err)
	var missErr *errors.MissingResponseColumnError
	require.True(t, errors.As(err, &missErr))
	assert.Equal(t, "b", missErr.Column)
	assert.Equal(t, "d", missErr.Dataset)
}

func TestColumn_ReturnsCopy(t *testing.T) {
	ds := New("d")
	require.NoError(t, ds.AddColumn("a", []float64{1, 2}))

	col, err := ds.Column("a")
	require.NoError(t, err)
	col[0] = 99

	again, err := ds.Column("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0])
}

func TestAddColumn_StoresCopy(t *testing.T) {
	ds := New("d")
	values := []float64{1, 2}
	require.NoError(t, ds.AddColumn("a", values))
	values[0] = 99

	col, err := ds.Column("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, col[0])
}

func TestFromColumns(t *testing.T) {
	ds, err := FromColumns("d", []string{"a", "b"}, map[string][]float64{
		"a": {1, 2},
		"b": {3, 4},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.ColumnNames())
	assert.Equal(t, 2, ds.NumRows())
	assert.True(t, ds.HasColumn("b"))
}

func TestFromColumns_MissingNamed(t *testing.T) {
	_, err := FromColumns("d", []string{"a", "b"}, map[string][]float64{
		"a": {1, 2},
	})
	var malErr *errors.MalformedDatasetError
	assert.True(t, errors.As(err, &malErr))
}

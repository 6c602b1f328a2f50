package datatable

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderDuplicateName(t *testing.T) {
	_, err := NewBuilder[float64]([]string{"a", "b", "a"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestBuilderAddValueUnknownColumn(t *testing.T) {
	b, err := NewBuilder[float64]([]string{"a"})
	require.NoError(t, err)

	assert.ErrorIs(t, b.AddValue("b", 1), ErrInvalidColumnName)
}

func TestBuilderBuild(t *testing.T) {
	b, err := NewBuilder[float64]([]string{"time", "temp"})
	require.NoError(t, err)

	require.NoError(t, b.AddValue("time", 0))
	require.NoError(t, b.AddValue("temp", 21))
	require.NoError(t, b.AddValue("time", 1))
	require.NoError(t, b.AddValue("temp", 22))

	dt, err := b.Build("")
	require.NoError(t, err)

	assert.Equal(t, 2, dt.ColumnCount())
	assert.Equal(t, 2, dt.RowCount())

	col, err := dt.ColByName("temp")
	require.NoError(t, err)
	assert.Equal(t, []float64{21, 22}, slices.Collect(col))
}

func TestBuilderPreservesDeclaredOrder(t *testing.T) {
	names := []string{"zulu", "alpha", "mike", "bravo"}
	b, err := NewBuilder[float64](names)
	require.NoError(t, err)

	for i, name := range names {
		require.NoError(t, b.AddValue(name, float64(i)))
	}

	dt, err := b.Build("")
	require.NoError(t, err)
	assert.Equal(t, names, slices.Collect(dt.Names()))

	var row []float64
	for r := range dt.Rows() {
		row = slices.Collect(r)
	}
	assert.Equal(t, []float64{0, 1, 2, 3}, row)
}

func TestBuilderBuildWithBaseName(t *testing.T) {
	b, err := NewBuilder[float64]([]string{"time", "temp"})
	require.NoError(t, err)

	require.NoError(t, b.AddValue("time", 5))
	require.NoError(t, b.AddValue("temp", 21))

	dt, err := b.Build("time")
	require.NoError(t, err)

	seq, err := dt.ColByNameWithBase("temp")
	require.NoError(t, err)
	for base, value := range seq {
		assert.Equal(t, 5.0, base)
		assert.Equal(t, 21.0, value)
	}
}

func TestBuilderBuildUnknownBaseName(t *testing.T) {
	b, err := NewBuilder[float64]([]string{"a"})
	require.NoError(t, err)
	require.NoError(t, b.AddValue("a", 1))

	_, err = b.Build("b")
	assert.ErrorIs(t, err, ErrInvalidBaseName)
}

func TestBuilderBuildInconsistentColumns(t *testing.T) {
	b, err := NewBuilder[float64]([]string{"a", "b"})
	require.NoError(t, err)

	require.NoError(t, b.AddValue("a", 1))
	require.NoError(t, b.AddValue("a", 2))
	require.NoError(t, b.AddValue("b", 10))

	_, err = b.Build("")
	assert.ErrorIs(t, err, ErrInconsistentBuilderData)
}

func TestBuilderBuildNoColumns(t *testing.T) {
	b, err := NewBuilder[float64](nil)
	require.NoError(t, err)

	_, err = b.Build("")
	assert.ErrorIs(t, err, ErrInconsistentBuilderData)
}

func TestBuilderBuildEmptyColumns(t *testing.T) {
	b, err := NewBuilder[float64]([]string{"a", "b"})
	require.NoError(t, err)

	dt, err := b.Build("")
	require.NoError(t, err)
	assert.Equal(t, 2, dt.ColumnCount())
	assert.Equal(t, 0, dt.RowCount())
}

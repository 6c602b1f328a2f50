package datatable

import (
	"iter"
	"slices"
	"strconv"
)

// Float is the value type a DataTable can hold. Both IEEE float widths
// support the NaN sentinel used for missing values.
type Float interface {
	~float32 | ~float64
}

// noBase marks a table whose base column is auto-generated.
const noBase = -1

// DataTable is a read-mostly column store. Values are appended row by row
// via AddRow; every column always has exactly RowCount values.
type DataTable[T Float] struct {
	columnCount int
	rowCount    int
	baseIndex   int
	names       []string
	columns     [][]T
	baseData    []T
}

// New creates a table with the given number of value columns. When names is
// nil the columns are named "0", "1", ... in order. baseIndex selects the
// value column used as the base axis; pass a negative index for an
// auto-generated 0, 1, 2, ... base. The index is not validated here, use
// NewWithBaseIndex when it comes from outside.
func New[T Float](columns int, names []string, baseIndex int) *DataTable[T] {
	if names == nil {
		names = make([]string, columns)
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
	}
	if baseIndex < 0 {
		baseIndex = noBase
	}
	return &DataTable[T]{
		columnCount: columns,
		baseIndex:   baseIndex,
		names:       slices.Clone(names),
		columns:     make([][]T, columns),
	}
}

// NewWithBaseIndex creates a table whose base axis is the value column at
// baseIndex. Returns ErrInvalidBaseIndex when the index is out of range.
func NewWithBaseIndex[T Float](columns int, names []string, baseIndex int) (*DataTable[T], error) {
	if baseIndex < 0 || baseIndex >= columns {
		return nil, ErrInvalidBaseIndex
	}
	return New[T](columns, names, baseIndex), nil
}

// NewWithBaseName creates a table whose base axis is the value column called
// baseName. Returns ErrInvalidBaseName when no column has that name.
func NewWithBaseName[T Float](columns int, names []string, baseName string) (*DataTable[T], error) {
	index := slices.Index(names, baseName)
	if index < 0 {
		return nil, ErrInvalidBaseName
	}
	return NewWithBaseIndex[T](columns, names, index)
}

// ColumnCount returns the number of value columns.
func (t *DataTable[T]) ColumnCount() int { return t.columnCount }

// RowCount returns the number of rows appended so far.
func (t *DataTable[T]) RowCount() int { return t.rowCount }

// AddRow appends one value to every column, in column order. The base axis
// advances as well: tables with an explicit base read it straight from the
// referenced column, tables without one extend the 0, 1, 2, ... sequence.
func (t *DataTable[T]) AddRow(values []T) error {
	if len(values) != t.columnCount {
		return ErrInvalidColumnCount
	}
	for i, v := range values {
		t.columns[i] = append(t.columns[i], v)
	}
	switch {
	case t.baseIndex != noBase:
		// baseData stays empty, base() resolves to columns[baseIndex].
	case len(t.baseData) == 0:
		var zero T
		t.baseData = append(t.baseData, zero)
	default:
		t.baseData = append(t.baseData, t.baseData[len(t.baseData)-1]+1)
	}
	t.rowCount++
	return nil
}

// Name returns the name of the column at index.
func (t *DataTable[T]) Name(index int) (string, error) {
	if err := t.checkColumnIndex(index); err != nil {
		return "", err
	}
	return t.names[index], nil
}

// Names returns the column names in table order.
func (t *DataTable[T]) Names() iter.Seq[string] {
	return slices.Values(t.names)
}

// Col returns the values of the column at index, in row order.
func (t *DataTable[T]) Col(index int) (iter.Seq[T], error) {
	if err := t.checkColumnIndex(index); err != nil {
		return nil, err
	}
	return slices.Values(t.columns[index]), nil
}

// ColByName returns the values of the named column, in row order.
func (t *DataTable[T]) ColByName(name string) (iter.Seq[T], error) {
	index, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	return t.Col(index)
}

// ColWithBase returns (base, value) pairs for the column at index, one pair
// per row.
func (t *DataTable[T]) ColWithBase(index int) (iter.Seq2[T, T], error) {
	if err := t.checkColumnIndex(index); err != nil {
		return nil, err
	}
	base := t.base()
	col := t.columns[index]
	if len(base) != len(col) {
		return nil, ErrInconsistentContainerSize
	}
	return func(yield func(T, T) bool) {
		for i := range col {
			if !yield(base[i], col[i]) {
				return
			}
		}
	}, nil
}

// ColByNameWithBase returns (base, value) pairs for the named column.
func (t *DataTable[T]) ColByNameWithBase(name string) (iter.Seq2[T, T], error) {
	index, err := t.columnIndex(name)
	if err != nil {
		return nil, err
	}
	return t.ColWithBase(index)
}

// Row returns the base value at index followed by each column's value at
// that index. An out-of-range row index reports ErrInvalidColumnIndex, the
// error taxonomy carries no row-specific sentinel.
func (t *DataTable[T]) Row(index int) (iter.Seq[T], error) {
	if index < 0 || index >= t.rowCount {
		return nil, ErrInvalidColumnIndex
	}
	row := make([]T, 0, t.columnCount+1)
	row = append(row, t.base()[index])
	for _, col := range t.columns {
		row = append(row, col[index])
	}
	return slices.Values(row), nil
}

// Rows returns one sequence per row, in ascending row order. Each row
// sequence yields the value columns only; callers that need the base axis
// prepend it themselves (see Row).
func (t *DataTable[T]) Rows() iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		for i := 0; i < t.rowCount; i++ {
			row := func(yield func(T) bool) {
				for _, col := range t.columns {
					if !yield(col[i]) {
						return
					}
				}
			}
			if !yield(row) {
				return
			}
		}
	}
}

// base returns the active base column: the referenced value column when an
// explicit base is set, the generated sequence otherwise.
func (t *DataTable[T]) base() []T {
	if t.baseIndex != noBase {
		return t.columns[t.baseIndex]
	}
	return t.baseData
}

func (t *DataTable[T]) checkColumnIndex(index int) error {
	if index < 0 || index >= t.columnCount {
		return ErrInvalidColumnIndex
	}
	return nil
}

func (t *DataTable[T]) columnIndex(name string) (int, error) {
	index := slices.Index(t.names, name)
	if index < 0 {
		return 0, ErrInvalidColumnName
	}
	return index, nil
}

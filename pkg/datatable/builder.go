package datatable

import "slices"

// Builder accumulates values by column name and produces a DataTable once
// every column has the same number of values.
//
// The declared column order is preserved: the built table lists its columns
// in the order the names were passed to NewBuilder.
type Builder[T Float] struct {
	names   []string
	columns map[string][]T
}

// NewBuilder creates a builder with one empty column per name. Returns
// ErrDuplicateName when a name repeats.
func NewBuilder[T Float](names []string) (*Builder[T], error) {
	b := &Builder[T]{
		names:   slices.Clone(names),
		columns: make(map[string][]T, len(names)),
	}
	for _, name := range names {
		if _, ok := b.columns[name]; ok {
			return nil, ErrDuplicateName
		}
		b.columns[name] = nil
	}
	return b, nil
}

// AddValue appends value to the named column. Returns ErrInvalidColumnName
// when the column was not declared.
func (b *Builder[T]) AddValue(name string, value T) error {
	col, ok := b.columns[name]
	if !ok {
		return ErrInvalidColumnName
	}
	b.columns[name] = append(col, value)
	return nil
}

// Build finalizes the builder into a DataTable. When baseName is non-empty
// the matching column becomes the base axis; otherwise the table gets an
// auto-generated base. Returns ErrInconsistentBuilderData when the columns
// have unequal lengths or no columns were declared.
func (b *Builder[T]) Build(baseName string) (*DataTable[T], error) {
	length, err := b.length()
	if err != nil {
		return nil, err
	}

	var dt *DataTable[T]
	if baseName != "" {
		dt, err = NewWithBaseName[T](len(b.names), b.names, baseName)
		if err != nil {
			return nil, err
		}
	} else {
		dt = New[T](len(b.names), b.names, noBase)
	}

	row := make([]T, len(b.names))
	for i := 0; i < length; i++ {
		for c, name := range b.names {
			row[c] = b.columns[name][i]
		}
		if err := dt.AddRow(row); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// length returns the common column length, or ErrInconsistentBuilderData
// when the columns disagree or none exist.
func (b *Builder[T]) length() (int, error) {
	if len(b.names) == 0 {
		return 0, ErrInconsistentBuilderData
	}
	length := len(b.columns[b.names[0]])
	for _, name := range b.names[1:] {
		if len(b.columns[name]) != length {
			return 0, ErrInconsistentBuilderData
		}
	}
	return length, nil
}

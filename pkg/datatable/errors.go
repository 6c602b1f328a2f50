package datatable

import "errors"

// Structural errors reported by DataTable and Builder. All are sentinels so
// callers can test for them with errors.Is.
var (
	// ErrInvalidColumnName is returned when a column name is not known to
	// the table or builder.
	ErrInvalidColumnName = errors.New("datatable: invalid column name")

	// ErrInvalidColumnCount is returned by AddRow when the number of values
	// does not match the number of columns.
	ErrInvalidColumnCount = errors.New("datatable: invalid column count")

	// ErrInvalidColumnIndex is returned when a column index is out of range.
	ErrInvalidColumnIndex = errors.New("datatable: invalid column index")

	// ErrInvalidBaseIndex is returned when a base column index is out of
	// range.
	ErrInvalidBaseIndex = errors.New("datatable: invalid base data index")

	// ErrInvalidBaseName is returned when a base column name does not match
	// any declared column.
	ErrInvalidBaseName = errors.New("datatable: invalid base data name")

	// ErrInconsistentBuilderData is returned by Build when the accumulated
	// columns have unequal lengths, or when the builder has no columns.
	ErrInconsistentBuilderData = errors.New("datatable: inconsistent builder data")

	// ErrInconsistentContainerSize is returned when the base column and a
	// value column disagree in length. This indicates a broken invariant.
	ErrInconsistentContainerSize = errors.New("datatable: inconsistent container size")

	// ErrDuplicateName is returned when the same column name is declared
	// twice.
	ErrDuplicateName = errors.New("datatable: duplicate column name")
)

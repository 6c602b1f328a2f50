package extract

import "fmt"

// Stages an ExtractionError can originate from.
const (
	StageTable = "table"
	StageRead  = "read"
)

// ExtractionError reports a failure of the extraction pipeline. Stage names
// the layer that failed: StageTable for structural table errors (see the
// datatable sentinels), StageRead for I/O failures. The underlying error is
// available through errors.Is/errors.As via Unwrap.
type ExtractionError struct {
	Stage string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract: %s failure: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

func tableFailure(err error) *ExtractionError {
	return &ExtractionError{Stage: StageTable, Err: err}
}

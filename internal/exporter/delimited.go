package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"

	"rextract/pkg/datatable"
)

// DefaultSeparator is the field separator of the CLI output format.
const DefaultSeparator = ';'

// Writer provides delimited-text export functionality.
type Writer struct {
	separator rune
}

// NewWriter creates a writer using the given field separator. Passing 0
// selects DefaultSeparator.
func NewWriter(separator rune) *Writer {
	if separator == 0 {
		separator = DefaultSeparator
	}
	return &Writer{separator: separator}
}

// WriteOptions configures a single export.
type WriteOptions struct {
	Headers []string
	Records [][]string
}

// Write emits the header line followed by the records.
func (w *Writer) Write(out io.Writer, options WriteOptions) error {
	slog.Debug("writing delimited output",
		slog.Int("column_count", len(options.Headers)),
		slog.Int("record_count", len(options.Records)))

	cw := csv.NewWriter(out)
	cw.Comma = w.separator

	if len(options.Headers) > 0 {
		if err := cw.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTable exports a table: its column names as the header, then every
// row. The base column is omitted.
func WriteTable[T datatable.Float](out io.Writer, t *datatable.DataTable[T], separator rune) error {
	headers, records := TableRecords(t)
	return NewWriter(separator).Write(out, WriteOptions{
		Headers: headers,
		Records: records,
	})
}

// TableRecords flattens a table into header names and per-row string
// records, one field per value column.
func TableRecords[T datatable.Float](t *datatable.DataTable[T]) ([]string, [][]string) {
	headers := slices.Collect(t.Names())

	records := make([][]string, 0, t.RowCount())
	for row := range t.Rows() {
		record := make([]string, 0, t.ColumnCount())
		for v := range row {
			record = append(record, FormatValue(v))
		}
		records = append(records, record)
	}
	return headers, records
}

// FormatValue renders a single value. NaN renders as "NaN".
func FormatValue[T datatable.Float](v T) string {
	switch f := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	default:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
}

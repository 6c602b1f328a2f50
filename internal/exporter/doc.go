// Package exporter renders extracted data tables as delimited text.
//
// The Writer produces one header line of column names followed by one line
// per row, fields joined by a configurable separator (the CLI uses ';').
// TableRecords flattens a datatable.DataTable into the string records the
// Writer consumes; NaN values render as "NaN". The base column is never
// emitted.
package exporter

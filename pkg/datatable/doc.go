// Package datatable provides a column-oriented table of floating-point
// values built up one row at a time.
//
// A DataTable holds a fixed set of named value columns plus a base column
// that serves as the independent axis (for example a timestamp). The base is
// either one of the value columns, selected by index or name, or an
// auto-generated 0, 1, 2, ... sequence.
//
// Tables are usually assembled through a Builder, which accumulates values
// by column name and verifies that every column ends up with the same
// number of rows:
//
//	b, err := datatable.NewBuilder[float64]([]string{"time", "temp"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b.AddValue("time", 0.5)
//	b.AddValue("temp", 21.0)
//	dt, err := b.Build("time")
//
// Column and row access is exposed as lazy iter.Seq sequences, so callers
// can range over a table without copying it.
package datatable

package extract

import (
	"io"
	"math"
	"strconv"

	"github.com/dlclark/regexp2"

	"rextract/pkg/datatable"
)

// NamedRegex pairs a data expression with the column name its matches feed.
type NamedRegex struct {
	Name  string
	Regex *regexp2.Regexp
}

// NewNamedRegex compiles pattern and pairs it with name.
func NewNamedRegex(name, pattern string) (NamedRegex, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return NamedRegex{}, err
	}
	return NamedRegex{Name: name, Regex: re}, nil
}

// ExtractData streams lines from r through the include/exclude filter and
// applies every data expression to each kept line, accumulating one value
// per expression per line into the named columns of a table.
//
// When group is false the whole match is parsed, otherwise capture group 1.
// A non-matching expression, a missing capture group, or an unparseable
// token all contribute NaN rather than failing the extraction. Lines that
// surface read errors are skipped.
//
// When baseName is non-empty, the column of that name becomes the table's
// base axis; otherwise the base is the generated 0, 1, 2, ... sequence.
// Structural table errors abort the call wrapped in *ExtractionError.
func ExtractData[T datatable.Float](
	r io.Reader,
	dataRegexes []NamedRegex,
	includes, excludes []*regexp2.Regexp,
	baseName string,
	group bool,
) (*datatable.DataTable[T], error) {
	names := make([]string, len(dataRegexes))
	for i, nr := range dataRegexes {
		names[i] = nr.Name
	}
	builder, err := datatable.NewBuilder[T](names)
	if err != nil {
		return nil, tableFailure(err)
	}

	for line, err := range FilterLines(r, includes, excludes) {
		if err != nil {
			continue
		}
		for _, nr := range dataRegexes {
			if err := builder.AddValue(nr.Name, number[T](line, nr.Regex, group)); err != nil {
				return nil, tableFailure(err)
			}
		}
	}

	dt, err := builder.Build(baseName)
	if err != nil {
		return nil, tableFailure(err)
	}
	return dt, nil
}

// Filter streams lines from r through the include/exclude filter and
// returns the kept lines in stream order. Lines that surface read errors
// are skipped.
func Filter(r io.Reader, includes, excludes []*regexp2.Regexp) ([]string, error) {
	var output []string
	for line, err := range FilterLines(r, includes, excludes) {
		if err != nil {
			continue
		}
		output = append(output, line)
	}
	return output, nil
}

// number extracts one value from line: the text of capture group 0 (the
// whole match) or group 1, parsed as a float. Any failure along the way
// yields NaN.
func number[T datatable.Float](line string, re *regexp2.Regexp, group bool) T {
	nan := T(math.NaN())

	matchIndex := 0
	if group {
		matchIndex = 1
	}
	m, err := re.FindStringMatch(line)
	if err != nil || m == nil {
		return nan
	}
	g := m.GroupByNumber(matchIndex)
	if g == nil || len(g.Captures) == 0 {
		return nan
	}
	v, err := strconv.ParseFloat(g.String(), 64)
	if err != nil {
		return nan
	}
	return T(v)
}

package extract

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rextract/pkg/datatable"
)

func namedRegexes(t *testing.T, pairs ...string) []NamedRegex {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	var regexes []NamedRegex
	for i := 0; i < len(pairs); i += 2 {
		nr, err := NewNamedRegex(pairs[i], pairs[i+1])
		require.NoError(t, err)
		regexes = append(regexes, nr)
	}
	return regexes
}

func column(t *testing.T, dt *datatable.DataTable[float64], name string) []float64 {
	t.Helper()
	col, err := dt.ColByName(name)
	require.NoError(t, err)
	return slices.Collect(col)
}

// assertValues compares element-wise, treating NaN as equal to NaN.
func assertValues(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %v", i, got[i])
			continue
		}
		assert.Equal(t, want[i], got[i], "index %d", i)
	}
}

func TestExtractDataBasic(t *testing.T) {
	input := "T=12.5\nT=13.0\n"
	regexes := namedRegexes(t, "t", `T=(\d+\.\d+)`)

	dt, err := ExtractData[float64](strings.NewReader(input), regexes, nil, nil, "", true)
	require.NoError(t, err)

	assert.Equal(t, 1, dt.ColumnCount())
	assert.Equal(t, 2, dt.RowCount())
	assertValues(t, []float64{12.5, 13.0}, column(t, dt, "t"))

	seq, err := dt.ColByNameWithBase("t")
	require.NoError(t, err)
	var base []float64
	for b := range seq {
		base = append(base, b)
	}
	assert.Equal(t, []float64{0, 1}, base)
}

func TestExtractDataWholeMatch(t *testing.T) {
	input := "12.5 degrees\n13 degrees\n"
	regexes := namedRegexes(t, "t", `\d+(\.\d+)?`)

	dt, err := ExtractData[float64](strings.NewReader(input), regexes, nil, nil, "", false)
	require.NoError(t, err)

	assertValues(t, []float64{12.5, 13}, column(t, dt, "t"))
}

func TestExtractDataNaNOnMissingMatch(t *testing.T) {
	input := "x=1 y=2\nx=3\n"
	regexes := namedRegexes(t, "x", `x=(\d+)`, "y", `y=(\d+)`)

	dt, err := ExtractData[float64](strings.NewReader(input), regexes, nil, nil, "", true)
	require.NoError(t, err)

	assertValues(t, []float64{1, 3}, column(t, dt, "x"))
	assertValues(t, []float64{2, math.NaN()}, column(t, dt, "y"))
}

func TestExtractDataNaNCases(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name    string
		input   string
		pattern string
		group   bool
		want    []float64
	}{
		{
			name:    "group requested but pattern has none",
			input:   "value 42\n",
			pattern: `value \d+`,
			group:   true,
			want:    []float64{nan},
		},
		{
			name:    "captured token does not parse",
			input:   "v=abc\n",
			pattern: `v=(\w+)`,
			group:   true,
			want:    []float64{nan},
		},
		{
			name:    "whole match does not parse",
			input:   "width=17\n",
			pattern: `width=\d+`,
			group:   false,
			want:    []float64{nan},
		},
		{
			name:    "all rows NaN still builds",
			input:   "a\nb\nc\n",
			pattern: `z=(\d+)`,
			group:   true,
			want:    []float64{nan, nan, nan},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regexes := namedRegexes(t, "v", tt.pattern)
			dt, err := ExtractData[float64](strings.NewReader(tt.input), regexes, nil, nil, "", tt.group)
			require.NoError(t, err)
			assertValues(t, tt.want, column(t, dt, "v"))
		})
	}
}

func TestExtractDataWithFilters(t *testing.T) {
	input := "temp 10\ntemp 20 calibration\ntemp 30\nhum 99\n"
	regexes := namedRegexes(t, "temp", `temp (\d+)`)

	dt, err := ExtractData[float64](
		strings.NewReader(input),
		regexes,
		mustCompile(t, "^temp"),
		mustCompile(t, "calibration"),
		"",
		true,
	)
	require.NoError(t, err)

	assert.Equal(t, 2, dt.RowCount())
	assertValues(t, []float64{10, 30}, column(t, dt, "temp"))
}

func TestExtractDataBaseName(t *testing.T) {
	input := "t=1 v=10\nt=2 v=20\nt=4 v=40\n"
	regexes := namedRegexes(t, "time", `t=(\d+)`, "temp", `v=(\d+)`)

	dt, err := ExtractData[float64](strings.NewReader(input), regexes, nil, nil, "time", true)
	require.NoError(t, err)

	seq, err := dt.ColByNameWithBase("temp")
	require.NoError(t, err)

	var base, values []float64
	for b, v := range seq {
		base = append(base, b)
		values = append(values, v)
	}
	assert.Equal(t, []float64{1, 2, 4}, base)
	assert.Equal(t, []float64{10, 20, 40}, values)
}

func TestExtractDataUnknownBaseName(t *testing.T) {
	regexes := namedRegexes(t, "v", `(\d+)`)

	_, err := ExtractData[float64](strings.NewReader("1\n"), regexes, nil, nil, "missing", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, datatable.ErrInvalidBaseName)

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, StageTable, extractionErr.Stage)
}

func TestExtractDataDuplicateColumnName(t *testing.T) {
	regexes := namedRegexes(t, "v", `a=(\d+)`, "v", `b=(\d+)`)

	_, err := ExtractData[float64](strings.NewReader("a=1 b=2\n"), regexes, nil, nil, "", true)
	assert.ErrorIs(t, err, datatable.ErrDuplicateName)
}

func TestExtractDataEmptyInput(t *testing.T) {
	regexes := namedRegexes(t, "v", `(\d+)`)

	dt, err := ExtractData[float64](strings.NewReader(""), regexes, nil, nil, "", true)
	require.NoError(t, err)

	assert.Equal(t, 1, dt.ColumnCount())
	assert.Equal(t, 0, dt.RowCount())
}

func TestExtractDataColumnOrder(t *testing.T) {
	regexes := namedRegexes(t, "z", `z=(\d+)`, "a", `a=(\d+)`, "m", `m=(\d+)`)

	dt, err := ExtractData[float64](strings.NewReader("z=1 a=2 m=3\n"), regexes, nil, nil, "", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, slices.Collect(dt.Names()))
}

func TestExtractDataFloat32(t *testing.T) {
	regexes := []NamedRegex{}
	nr, err := NewNamedRegex("v", `(\d+\.\d+)`)
	require.NoError(t, err)
	regexes = append(regexes, nr)

	dt, err := ExtractData[float32](strings.NewReader("1.5\n"), regexes, nil, nil, "", true)
	require.NoError(t, err)

	col, err := dt.ColByName("v")
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5}, slices.Collect(col))
}

func TestNewNamedRegexInvalidPattern(t *testing.T) {
	_, err := NewNamedRegex("v", "(unclosed")
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	input := "A 1\nB 2\nA 3\n"

	lines, err := Filter(strings.NewReader(input), mustCompile(t, "^A"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A 1", "A 3"}, lines)
}

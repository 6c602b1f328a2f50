// Package extract turns line-oriented text such as logs or G-code into a
// column-oriented datatable.DataTable.
//
// The pipeline has three stages. FilterLines lazily yields the lines of a
// byte stream that pass a set of include/exclude regular expressions.
// For every kept line, each data expression contributes one value to its
// named column: the matched text (or its first capture group) parsed as a
// float, or NaN when the expression does not match or the token does not
// parse. ExtractData composes both stages over an io.Reader and builds the
// table; Filter runs the filter stage alone and collects the kept lines.
//
// Regular expressions use github.com/dlclark/regexp2, so lookaround and
// other backtracking constructs are available in all predicates.
package extract

// Package main provides the rextract command line interface.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/spf13/cobra"

	"rextract/internal/config"
	"rextract/internal/exporter"
	"rextract/internal/infrastructure"
	"rextract/internal/xlsx"
	"rextract/pkg/extract"
)

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 1
	ExitInputError   = 2
	ExitRuntimeError = 3
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Build information (set via ldflags during build)
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitUsageError)
	}
}

var rootCmd = &cobra.Command{
	Use:     "rextract",
	Version: version,
	Short:   "Extract data from line based text files like logs or G-code",
	Long: `rextract reads a line-oriented text file, keeps the lines that pass a
set of include/exclude regular expressions, and extracts numeric values
from the kept lines into named columns.

Examples:
  # Extract temperatures into a column named "t"
  rextract extract-data -f printer.log -d 'T=(\d+\.\d+)' -n t -g

  # Keep only lines that look like motion commands
  rextract filter-data -f part.gcode -i '^G[01] '`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
			cfg = config.Default()
		}
		if _, err := infrastructure.InitializeLogger(cfg.Logging); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not initialize logger: %v\n", err)
		}
		if verbose {
			infrastructure.SetLevel(slog.LevelDebug)
		} else if quiet {
			infrastructure.SetLevel(slog.LevelError)
		}
	},
}

var (
	// extract-data flags
	extractFile  string
	dataExprs    []string
	names        []string
	includeExprs []string
	skipExprs    []string
	group        bool
	sheet        string

	// filter-data flags
	filterFile         string
	filterIncludeExprs []string
	filterSkipExprs    []string
	filterSheet        string
)

var extractDataCmd = &cobra.Command{
	Use:   "extract-data",
	Short: "Extract numeric columns into a csv format",
	Long: `Extract numeric values from the lines of a text file into named columns
and print them as semicolon separated values, one header line followed by
one line per input line that passed the filters.

Column names are resolved per data expression: the positionally matching
--names argument, else the expression's first named capture group, else a
running counter starting at 1.`,
	Run: runExtractData,
}

var filterDataCmd = &cobra.Command{
	Use:   "filter-data",
	Short: "Filter input lines based on regular expressions",
	Long: `Print the lines of a text file that match at least one --include-expr
(all lines when none is given) and match no --skip-expr, in input order.`,
	Run: runFilterData,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")

	extractDataCmd.Flags().StringVarP(&extractFile, "file", "f", "", "path to the input text file")
	extractDataCmd.Flags().StringArrayVarP(&dataExprs, "data-expr", "d", nil,
		"regex to extract data from a line, repeatable to extract multiple values")
	extractDataCmd.Flags().StringArrayVarP(&names, "names", "n", nil,
		"name of the extracted data, paired positionally with --data-expr")
	extractDataCmd.Flags().StringArrayVarP(&includeExprs, "include-expr", "i", nil,
		"data is only extracted from lines matching one of these expressions")
	extractDataCmd.Flags().StringArrayVarP(&skipExprs, "skip-expr", "s", nil,
		"data is not extracted from lines matching one of these expressions")
	extractDataCmd.Flags().BoolVarP(&group, "group", "g", false,
		"use the first group of the match as data instead of the full match")
	extractDataCmd.Flags().StringVar(&sheet, "sheet", "",
		"sheet to read when the input file is an xlsx workbook (default: all sheets)")
	cobra.CheckErr(extractDataCmd.MarkFlagRequired("file"))

	filterDataCmd.Flags().StringVarP(&filterFile, "file", "f", "", "path to the input text file")
	filterDataCmd.Flags().StringArrayVarP(&filterIncludeExprs, "include-expr", "i", nil,
		"only lines matching one of these expressions are kept, all lines when omitted")
	filterDataCmd.Flags().StringArrayVarP(&filterSkipExprs, "skip-expr", "s", nil,
		"lines matching one of these expressions are dropped")
	filterDataCmd.Flags().StringVar(&filterSheet, "sheet", "",
		"sheet to read when the input file is an xlsx workbook (default: all sheets)")
	cobra.CheckErr(filterDataCmd.MarkFlagRequired("file"))

	rootCmd.AddCommand(extractDataCmd)
	rootCmd.AddCommand(filterDataCmd)
}

func runExtractData(_ *cobra.Command, _ []string) {
	regexes, err := compileAll(dataExprs)
	if err != nil {
		fail(ExitUsageError, err)
	}
	includes, err := compileAll(includeExprs)
	if err != nil {
		fail(ExitUsageError, err)
	}
	excludes, err := compileAll(skipExprs)
	if err != nil {
		fail(ExitUsageError, err)
	}

	dataRegexes := make([]extract.NamedRegex, len(regexes))
	for i, name := range resolveNames(names, regexes) {
		dataRegexes[i] = extract.NamedRegex{Name: name, Regex: regexes[i]}
	}

	reader, cleanup, err := openInput(extractFile, sheet)
	if err != nil {
		fail(ExitInputError, err)
	}
	defer cleanup()

	slog.Debug("extracting data",
		slog.String("file", extractFile),
		slog.Int("data_expr_count", len(dataRegexes)),
		slog.Bool("group", group))

	dt, err := extract.ExtractData[float64](reader, dataRegexes, includes, excludes, "", group)
	if err != nil {
		fail(ExitRuntimeError, fmt.Errorf("could not extract data from %q: %w", extractFile, err))
	}

	slog.Debug("extraction finished",
		slog.Int("column_count", dt.ColumnCount()),
		slog.Int("row_count", dt.RowCount()))

	if err := exporter.WriteTable(os.Stdout, dt, exporter.DefaultSeparator); err != nil {
		fail(ExitRuntimeError, fmt.Errorf("could not write output: %w", err))
	}
}

func runFilterData(_ *cobra.Command, _ []string) {
	includes, err := compileAll(filterIncludeExprs)
	if err != nil {
		fail(ExitUsageError, err)
	}
	excludes, err := compileAll(filterSkipExprs)
	if err != nil {
		fail(ExitUsageError, err)
	}

	reader, cleanup, err := openInput(filterFile, filterSheet)
	if err != nil {
		fail(ExitInputError, err)
	}
	defer cleanup()

	lines, err := extract.Filter(reader, includes, excludes)
	if err != nil {
		fail(ExitRuntimeError, fmt.Errorf("could not filter %q: %w", filterFile, err))
	}

	slog.Debug("filtering finished", slog.Int("kept_lines", len(lines)))

	for _, line := range lines {
		fmt.Println(line)
	}
}

// compileAll compiles every expression, reporting the first offending one.
func compileAll(exprs []string) ([]*regexp2.Regexp, error) {
	regexes := make([]*regexp2.Regexp, len(exprs))
	for i, expr := range exprs {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("invalid regular expression %q: %w", expr, err)
		}
		regexes[i] = re
	}
	return regexes, nil
}

// resolveNames assigns a column name to every data expression: the
// positionally matching names entry, else the expression's first named
// capture group, else a running counter starting at 1.
func resolveNames(names []string, regexes []*regexp2.Regexp) []string {
	resolved := make([]string, len(regexes))
	counter := 0
	for i, re := range regexes {
		if i < len(names) {
			resolved[i] = names[i]
			continue
		}
		if name := firstGroupName(re); name != "" {
			resolved[i] = name
			continue
		}
		counter++
		resolved[i] = strconv.Itoa(counter)
	}
	return resolved
}

// firstGroupName returns the name of the first explicitly named capture
// group of re, or "" when the expression has none. Unnamed groups carry
// their number as their name and are skipped.
func firstGroupName(re *regexp2.Regexp) string {
	for _, n := range re.GetGroupNumbers() {
		name := re.GroupNameFromNumber(n)
		if name != "" && name != strconv.Itoa(n) {
			return name
		}
	}
	return ""
}

// openInput opens the input file. Workbook files are flattened into text
// lines; everything else is streamed as-is.
func openInput(path, sheet string) (io.Reader, func(), error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		r, err := xlsx.NewLineReader(path, sheet)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open specified file %q: %w", path, err)
		}
		return r, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open specified file %q: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

// fail prints a diagnostic and exits with the given code. No partial output
// has been produced at any call site.
func fail(code int, err error) {
	slog.Error("command failed", slog.String("error", err.Error()))
	fmt.Fprintf(os.Stderr, "rextract: %v\n", err)
	os.Exit(code)
}

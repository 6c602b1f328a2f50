package extract

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/dlclark/regexp2"
)

// FilterLines lazily yields the lines of r that pass the include and
// exclude predicates, in stream order. A line passes when it matches at
// least one include expression (an empty include set admits every line) and
// matches no exclude expression. Trailing "\n" or "\r\n" is stripped.
//
// Each yielded pair is either a kept line with a nil error, or an empty
// line with a read error. Read errors do not end the sequence: the error is
// surfaced and reading resumes with the next line, so the consumer decides
// whether to abort. The sequence is single use and terminates when the
// underlying stream ends.
func FilterLines(r io.Reader, includes, excludes []*regexp2.Regexp) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				if !yield("", err) {
					return
				}
				continue
			}
			if err == io.EOF && line == "" {
				return
			}
			// EOF with a partial final line still delivers the line.
			line = trimLineEnding(line)
			if !isIncluded(line, includes) || isExcluded(line, excludes) {
				if err == io.EOF {
					return
				}
				continue
			}
			if !yield(line, nil) {
				return
			}
			if err == io.EOF {
				return
			}
		}
	}
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// matches applies re in search mode. Evaluation errors (for example a
// backtracking timeout) count as a non-match.
func matches(line string, re *regexp2.Regexp) bool {
	m, err := re.FindStringMatch(line)
	return err == nil && m != nil
}

func isIncluded(line string, includes []*regexp2.Regexp) bool {
	for _, re := range includes {
		if matches(line, re) {
			return true
		}
	}
	return len(includes) == 0
}

func isExcluded(line string, excludes []*regexp2.Regexp) bool {
	for _, re := range excludes {
		if matches(line, re) {
			return true
		}
	}
	return false
}

// Package source normalizes raw assembly source into statement lines.
package source

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	lineNumber = regexp.MustCompile(`^\s*\d+\s*`)
	comment    = regexp.MustCompile(`\..*$`)
)

// Clean strips a leading line number and a trailing '.' comment from a line,
// and trims surrounding whitespace.
func Clean(line string) string {
	line = lineNumber.ReplaceAllString(line, "")
	line = comment.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// Scan reads source text and returns the non-empty cleaned lines.
func Scan(input io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := Clean(scanner.Text())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
	}

	err = scanner.Err()
	return
}

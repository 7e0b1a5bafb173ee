package mdscan

import (
	"regexp"
	"strings"
)

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// SplitLines normalises line endings and splits content into lines without
// their trailing newline. A final newline does not produce an empty last line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = crlfOrCR.ReplaceAllString(content, "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

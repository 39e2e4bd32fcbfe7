package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRegex  = regexp.MustCompile(`\s+`)
	beforePunctRegex = regexp.MustCompile(`\s+([,.;:!?])`)
	afterOpenRegex   = regexp.MustCompile(`\(\s+`)
	beforeCloseRegex = regexp.MustCompile(`\s+\)`)
)

// NormalizeSpace collapses whitespace runs and removes the stray spaces
// left around punctuation when inline markup is flattened to plain text.
func NormalizeSpace(s string) string {
	s = whitespaceRegex.ReplaceAllString(s, " ")
	s = strings.Trim(s, " \n\t")
	s = beforePunctRegex.ReplaceAllString(s, "$1")
	s = afterOpenRegex.ReplaceAllString(s, "(")
	s = beforeCloseRegex.ReplaceAllString(s, ")")
	return s
}

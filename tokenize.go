package vl

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// Tokenize splits text on every non-overlapping match of sep and returns
// len(matches)+1 fields. Empty fields, including trailing ones, are kept.
// Unlike regexp.Regexp.Split, an empty text yields exactly one empty field.
func Tokenize(text string, sep *regexp.Regexp) []string {
	matches := sep.FindAllStringIndex(text, -1)
	fields := make([]string, 0, len(matches)+1)
	beg := 0
	for _, m := range matches {
		fields = append(fields, text[beg:m[0]])
		beg = m[1]
	}
	return append(fields, text[beg:])
}

// FieldWidth returns the number of terminal cells s occupies.
func FieldWidth(s string) int {
	return runewidth.StringWidth(s)
}

package vl

import "regexp"

// Class is the classification of an input line.
type Class int

const (
	Data        Class = iota // tokenized, measured and padded
	Passthrough              // emitted verbatim
)

// String returns the class name.
func (c Class) String() string {
	if c == Passthrough {
		return "passthrough"
	}
	return "data"
}

// Classify reports whether the line at index is passed through: it lies in
// the first skip lines or comment matches anywhere in text. A nil comment
// matches nothing.
func Classify(index int, text string, skip int, comment *regexp.Regexp) Class {
	if index < skip {
		return Passthrough
	}
	if comment != nil && comment.MatchString(text) {
		return Passthrough
	}
	return Data
}

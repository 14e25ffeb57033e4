// Package report renders column width reports in several output formats.
//
// [Write] accepts a [Format] and items of any type. JSON, JSONL and YAML work
// on any value; the tabular formats require [Rower], and Markdown also
// requires [Headed]. [Column] is the row type produced by [Columns].
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/bjaus/vl"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
)

// Format represents an output format.
type Format string

const (
	Table    Format = "table"
	Plain    Format = "plain"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

var formats = []Format{Table, Plain, Markdown, CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides row data. Required for the tabular formats.
type Rower interface {
	Row() []string
}

// Headed provides column headers. Required for Markdown.
type Headed interface {
	Header() []string
}

// Titled renders a title above a bordered table.
type Titled interface {
	Title() string
}

// Aligned sets per-column alignment for Table, Plain and Markdown.
type Aligned interface {
	Alignments() []vl.Alignment
}

// Bordered controls the Table border style. Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderNone                       // space-separated columns
)

// Write formats items and writes them to w.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case Table, Plain:
		return writeTable(w, f, items)
	case Markdown:
		return writeMarkdown(w, items)
	case CSV:
		return writeCSV(w, items)
	case TSV:
		return writeTSV(w, items)
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func rowsOf[T any](f Format, items []T) ([][]string, error) {
	if _, ok := any(items[0]).(Rower); !ok {
		return nil, fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, f, items[0])
	}
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = any(item).(Rower).Row()
	}
	return rows, nil
}

func extendAligns(aligns []vl.Alignment, numCols int) []vl.Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]vl.Alignment, numCols)
	copy(extended, aligns)
	return extended
}

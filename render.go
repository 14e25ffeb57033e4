package vl

import (
	"fmt"
	"io"
	"strings"
)

// RenderStats summarises a render pass.
type RenderStats struct {
	Lines       int // lines read
	Rows        int // data lines emitted as padded rows
	Passthrough int // lines emitted verbatim
	Widened     int // widenings performed during the pass
}

// Render rewinds src and writes every line to w. Passthrough lines are
// written unchanged, ending included. Data lines are tokenized and each field
// is padded to its column width plus opts.Padding, followed by a newline.
//
// A field wider than its column widens widths before it is written, so the
// new width applies to that field and every later row. Rows already written
// keep the narrower layout.
func Render(src Source, opts Options, widths *WidthTable, w io.Writer) (RenderStats, error) {
	opts = opts.withDefaults()
	if widths == nil {
		widths = NewWidthTable()
	}
	var stats RenderStats
	if err := src.Reset(); err != nil {
		return stats, err
	}
	var sb strings.Builder
	for line, err := range Lines(src) {
		if err != nil {
			return stats, err
		}
		stats.Lines++
		if Classify(line.Index, line.Text, opts.Skip, opts.Comment) == Passthrough {
			stats.Passthrough++
			if err := writeString(w, line.Raw(), line.Index); err != nil {
				return stats, err
			}
			continue
		}
		sb.Reset()
		for i, field := range Tokenize(line.Text, opts.Separator) {
			if n := FieldWidth(field); n > widths.WidthOf(i) {
				widths.Widen(i, n)
				stats.Widened++
			}
			sb.WriteString(formatCell(field, widths.WidthOf(i), opts.Padding, opts.Align))
		}
		sb.WriteByte('\n')
		stats.Rows++
		if err := writeString(w, sb.String(), line.Index); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func writeString(w io.Writer, s string, index int) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: line %d: %s", ErrSinkWrite, index, err)
	}
	return nil
}

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/vl"
)

func writeMarkdown[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	rows, err := rowsOf(Markdown, items)
	if err != nil {
		return err
	}
	first := any(items[0])
	h, ok := first.(Headed)
	if !ok {
		return fmt.Errorf("%w: format %q requires Headed, not implemented by %T", ErrMissingInterface, Markdown, items[0])
	}
	header := h.Header()
	numCols := len(header)

	// Minimum 3 leaves room for alignment markers.
	widths := computeWidths(header, rows)[:numCols]
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	var aligns []vl.Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}
	aligns = extendAligns(aligns, numCols)

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case vl.AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case vl.AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []vl.Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

package vl

import (
	"fmt"
	"strings"
)

// Alignment controls how a field is justified inside its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

var alignNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignCenter: "center",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment parses "left", "right" or "center".
func ParseAlignment(s string) (Alignment, error) {
	for a, name := range alignNames {
		if strings.EqualFold(name, s) {
			return a, nil
		}
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// formatCell lays out s in a column of width cells followed by padding
// spaces. Left alignment fills to width+padding; s is never truncated.
func formatCell(s string, width, padding int, align Alignment) string {
	if align == AlignLeft {
		return fill(s, width+padding)
	}
	return alignCell(s, width, align) + strings.Repeat(" ", max(padding, 0))
}

func fill(s string, width int) string {
	pad := width - FieldWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - FieldWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

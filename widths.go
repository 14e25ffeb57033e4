package vl

// WidthTable maps a column index to the widest field seen in that column.
// Widths only grow. A table is owned by one run and used by one phase at a
// time; it is not safe for concurrent use.
type WidthTable struct {
	widths []int
}

// NewWidthTable returns an empty table.
func NewWidthTable() *WidthTable {
	return &WidthTable{}
}

// Widen records length for col if it exceeds the current width and reports
// whether the table changed.
func (t *WidthTable) Widen(col, length int) bool {
	if col < 0 {
		return false
	}
	for len(t.widths) <= col {
		t.widths = append(t.widths, -1)
	}
	if t.widths[col] >= length {
		return false
	}
	t.widths[col] = length
	return true
}

// WidthOf returns the width of col, or -1 if nothing was recorded for it.
func (t *WidthTable) WidthOf(col int) int {
	if col < 0 || col >= len(t.widths) {
		return -1
	}
	return t.widths[col]
}

// Len returns one past the highest column ever widened.
func (t *WidthTable) Len() int { return len(t.widths) }

// Widths returns a copy of the recorded widths, indexed by column.
func (t *WidthTable) Widths() []int {
	out := make([]int, len(t.widths))
	copy(out, t.widths)
	return out
}

// Clone returns an independent copy of the table.
func (t *WidthTable) Clone() *WidthTable {
	return &WidthTable{widths: t.Widths()}
}

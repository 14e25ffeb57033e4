package report

import (
	"strconv"

	"github.com/bjaus/vl"
)

// Column compares the probed estimate of one column with its final width.
type Column struct {
	Index  int `json:"column" yaml:"column"`
	Probed int `json:"probed" yaml:"probed"`
	Final  int `json:"final" yaml:"final"`
}

// Columns pairs the probed and final widths of every column seen by either
// table. Missing widths are reported as -1.
func Columns(probed, final *vl.WidthTable) []Column {
	n := max(probed.Len(), final.Len())
	cols := make([]Column, n)
	for i := range cols {
		cols[i] = Column{Index: i, Probed: probed.WidthOf(i), Final: final.WidthOf(i)}
	}
	return cols
}

// Realigned reports whether the render pass widened the column.
func (c Column) Realigned() bool { return c.Final > c.Probed }

func (c Column) Row() []string {
	mark := ""
	if c.Realigned() {
		mark = "yes"
	}
	return []string{strconv.Itoa(c.Index), strconv.Itoa(c.Probed), strconv.Itoa(c.Final), mark}
}

func (c Column) Header() []string { return []string{"Column", "Probed", "Final", "Realigned"} }

func (c Column) Title() string { return "Column widths" }

func (c Column) Alignments() []vl.Alignment {
	return []vl.Alignment{vl.AlignRight, vl.AlignRight, vl.AlignRight, vl.AlignLeft}
}

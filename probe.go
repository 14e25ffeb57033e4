package vl

// Probe estimates column widths from the first opts.ProbeLines data lines of
// src. Passthrough lines are skipped and do not count toward the sample. If
// src runs out first, the estimate uses whatever data lines it held, so an
// empty source yields an empty table.
func Probe(src Source, opts Options) (*WidthTable, error) {
	opts = opts.withDefaults()
	widths := NewWidthTable()
	if opts.ProbeLines <= 0 {
		return widths, nil
	}
	sampled := 0
	for line, err := range Lines(src) {
		if err != nil {
			return nil, err
		}
		if Classify(line.Index, line.Text, opts.Skip, opts.Comment) == Passthrough {
			continue
		}
		for i, field := range Tokenize(line.Text, opts.Separator) {
			widths.Widen(i, FieldWidth(field))
		}
		sampled++
		if sampled >= opts.ProbeLines {
			break
		}
	}
	return widths, nil
}

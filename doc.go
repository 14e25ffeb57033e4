// Package vl reformats delimiter-separated text into aligned columns.
//
// Every field is padded to the width of the widest value seen in its column
// plus a fixed number of spaces. Lines in the skip region and lines matching
// the comment pattern are passed through unchanged.
//
// # Two passes
//
// [Probe] reads a bounded number of data lines from the start of a [Source]
// and records their field widths in a [WidthTable]. [Render] then reads the
// whole source from the first line and writes padded rows, widening the same
// table whenever a field is wider than its column:
//
//	widths, err := vl.Probe(src, opts)
//	stats, err := vl.Render(src, opts, widths, os.Stdout)
//
// [Align] runs both. Output is streamed, so a widening only affects the row
// that causes it and the rows after it. Alignment is exact from the first
// row only when the probe saw the widest value of every column. Running the
// tool on its own output is not expected to reproduce it, since padding adds
// characters that the separator pattern may match.
//
// # Sources
//
// A [Source] must be readable twice from the start. [Open] and
// [NewSeekSource] rewind by seeking; [NewReplaySource] wraps a stream such
// as standard input and replays the lines the probe consumed.
//
// # Errors
//
//   - [ErrInvalidPattern] — a separator or comment pattern does not compile
//   - [ErrSourceUnavailable] — the input cannot be opened, read or rewound
//   - [ErrSinkWrite] — the output cannot be written
package vl

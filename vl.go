package vl

import (
	"errors"
	"fmt"
	"io"
	"regexp"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidPattern    = errors.New("invalid pattern")
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrSinkWrite         = errors.New("sink write failed")
)

// Default pattern sources used when no other pattern is configured.
const (
	DefaultSeparator  = `[,\t]`
	DefaultComment    = `^#`
	DefaultPadding    = 1
	DefaultProbeLines = 100
)

// Options configures a single run. The core does not validate it: negative
// counts are undefined behaviour, and nil patterns are replaced by the
// defaults.
type Options struct {
	// Separator splits a data line into fields.
	Separator *regexp.Regexp
	// Comment marks lines that are passed through verbatim.
	Comment *regexp.Regexp
	// Padding is the number of spaces appended after every field.
	Padding int
	// Skip is the number of leading lines passed through verbatim.
	Skip int
	// ProbeLines bounds the number of data lines sampled by [Probe].
	ProbeLines int
	// Align controls justification of a field inside its column.
	Align Alignment
}

// DefaultOptions returns the options used by the reference tool.
func DefaultOptions() Options {
	return Options{
		Separator:  regexp.MustCompile(DefaultSeparator),
		Comment:    regexp.MustCompile(DefaultComment),
		Padding:    DefaultPadding,
		ProbeLines: DefaultProbeLines,
	}
}

// CompilePattern compiles expr, wrapping any syntax error in
// [ErrInvalidPattern].
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidPattern, expr, err)
	}
	return re, nil
}

func (o Options) withDefaults() Options {
	if o.Separator == nil {
		o.Separator = regexp.MustCompile(DefaultSeparator)
	}
	if o.Comment == nil {
		o.Comment = regexp.MustCompile(DefaultComment)
	}
	return o
}

// Align probes src and then renders every line of it to w, sharing one
// width table between both passes. The returned table holds the final
// column widths.
func Align(src Source, w io.Writer, opts Options) (*WidthTable, RenderStats, error) {
	widths, err := Probe(src, opts)
	if err != nil {
		return nil, RenderStats{}, err
	}
	stats, err := Render(src, opts, widths, w)
	return widths, stats, err
}

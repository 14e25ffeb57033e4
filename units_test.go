package vl_test

import (
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/bjaus/vl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Classify ---

func TestClassify(t *testing.T) {
	t.Parallel()
	comment := regexp.MustCompile(`^#`)
	tests := map[string]struct {
		index   int
		text    string
		skip    int
		comment *regexp.Regexp
		want    vl.Class
	}{
		"data":                 {index: 0, text: "a,b", want: vl.Data},
		"inside skip region":   {index: 1, text: "a,b", skip: 2, want: vl.Passthrough},
		"at skip boundary":     {index: 2, text: "a,b", skip: 2, want: vl.Data},
		"comment":              {index: 3, text: "# x", comment: comment, want: vl.Passthrough},
		"comment not at start": {index: 3, text: "a # x", comment: comment, want: vl.Data},
		"unanchored pattern matches anywhere": {
			index: 0, text: "a,b // note", comment: regexp.MustCompile(`//`), want: vl.Passthrough,
		},
		"empty line is data": {index: 5, text: "", comment: comment, want: vl.Data},
		"nil comment":        {index: 0, text: "#x", want: vl.Data},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, vl.Classify(tt.index, tt.text, tt.skip, tt.comment))
		})
	}
}

func TestClassString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "data", vl.Data.String())
	assert.Equal(t, "passthrough", vl.Passthrough.String())
}

// --- Tokenize ---

func TestTokenize(t *testing.T) {
	t.Parallel()
	sep := regexp.MustCompile(vl.DefaultSeparator)
	tests := map[string]struct {
		text string
		want []string
	}{
		"empty":              {text: "", want: []string{""}},
		"no separator":       {text: "abc", want: []string{"abc"}},
		"two fields":         {text: "a,b", want: []string{"a", "b"}},
		"mixed separators":   {text: "a\tb,c", want: []string{"a", "b", "c"}},
		"leading separator":  {text: ",a", want: []string{"", "a"}},
		"trailing separator": {text: "a,", want: []string{"a", ""}},
		"trailing empties":   {text: "a,,", want: []string{"a", "", ""}},
		"only separators":    {text: ",\t", want: []string{"", "", ""}},
		"spaces kept":        {text: " a , b ", want: []string{" a ", " b "}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := vl.Tokenize(tt.text, sep)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(sep.FindAllStringIndex(tt.text, -1))+1)
		})
	}
}

func TestTokenizeRejoin(t *testing.T) {
	t.Parallel()
	sep := regexp.MustCompile(`\s*\|\s*`)
	for _, fields := range [][]string{
		{"a"},
		{"a", "b", "c"},
		{"", "x", ""},
		{"key", "value with spaces", "", "z"},
	} {
		for _, joiner := range []string{"|", " | ", "|  "} {
			assert.Equal(t, fields, vl.Tokenize(strings.Join(fields, joiner), sep), "joined with %q", joiner)
		}
	}
}

func TestFieldWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, vl.FieldWidth(""))
	assert.Equal(t, 3, vl.FieldWidth("abc"))
	assert.Equal(t, 4, vl.FieldWidth("你好"))
}

// --- WidthTable ---

func TestWidthTable(t *testing.T) {
	t.Parallel()
	wt := vl.NewWidthTable()
	assert.Equal(t, -1, wt.WidthOf(0))
	assert.Equal(t, 0, wt.Len())

	assert.True(t, wt.Widen(0, 3))
	assert.False(t, wt.Widen(0, 2))
	assert.False(t, wt.Widen(0, 3))
	assert.Equal(t, 3, wt.WidthOf(0))

	assert.True(t, wt.Widen(2, 0))
	assert.Equal(t, -1, wt.WidthOf(1))
	assert.Equal(t, 0, wt.WidthOf(2))
	assert.Equal(t, 3, wt.Len())
	assert.Equal(t, []int{3, -1, 0}, wt.Widths())

	assert.False(t, wt.Widen(-1, 5))
	assert.Equal(t, -1, wt.WidthOf(-1))
	assert.Equal(t, -1, wt.WidthOf(99))
}

func TestWidthTableCopies(t *testing.T) {
	t.Parallel()
	wt := vl.NewWidthTable()
	wt.Widen(0, 2)

	widths := wt.Widths()
	widths[0] = 100
	assert.Equal(t, 2, wt.WidthOf(0))

	clone := wt.Clone()
	clone.Widen(0, 7)
	clone.Widen(1, 1)
	assert.Equal(t, []int{2}, wt.Widths())
	assert.Equal(t, []int{7, 1}, clone.Widths())
}

// --- Alignment ---

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    vl.Alignment
		wantErr require.ErrorAssertionFunc
	}{
		"left":     {input: "left", want: vl.AlignLeft, wantErr: require.NoError},
		"right":    {input: "right", want: vl.AlignRight, wantErr: require.NoError},
		"center":   {input: "center", want: vl.AlignCenter, wantErr: require.NoError},
		"any case": {input: "RIGHT", want: vl.AlignRight, wantErr: require.NoError},
		"unknown":  {input: "justify", want: vl.AlignLeft, wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := vl.ParseAlignment(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignmentString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "left", vl.AlignLeft.String())
	assert.Equal(t, "center", vl.AlignCenter.String())
	assert.Equal(t, "Alignment(9)", vl.Alignment(9).String())
}

// --- Sources ---

func collect(t *testing.T, src vl.Source) []vl.Line {
	t.Helper()
	var lines []vl.Line
	for line, err := range vl.Lines(src) {
		require.NoError(t, err)
		lines = append(lines, line)
	}
	return lines
}

func TestSeekSourceReset(t *testing.T) {
	t.Parallel()
	src := vl.NewSeekSource(strings.NewReader("a\nb\r\nc"))
	want := []vl.Line{
		{Index: 0, Text: "a", Ending: "\n"},
		{Index: 1, Text: "b", Ending: "\r\n"},
		{Index: 2, Text: "c"},
	}
	assert.Equal(t, want, collect(t, src))

	_, err := src.Next()
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, src.Reset())
	assert.Equal(t, want, collect(t, src))
}

func TestReplaySource(t *testing.T) {
	t.Parallel()
	src := vl.NewReplaySource(strings.NewReader("a\nb\nc\n"))

	first, err := src.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", first.Text)
	assert.Equal(t, 1, src.Buffered())

	require.NoError(t, src.Reset())
	lines := collect(t, src)
	require.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, i, line.Index)
	}
	assert.Equal(t, "c\n", lines[2].Raw())
	assert.Equal(t, 1, src.Buffered())

	err = src.Reset()
	require.ErrorIs(t, err, vl.ErrSourceUnavailable)
}

func TestReplaySourceResetWithinBuffer(t *testing.T) {
	t.Parallel()
	src := vl.NewReplaySource(strings.NewReader("a\nb\n"))
	_, err := src.Next()
	require.NoError(t, err)
	require.NoError(t, src.Reset())
	require.NoError(t, src.Reset())
	assert.Len(t, collect(t, src), 2)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSourceReadError(t *testing.T) {
	t.Parallel()
	src := vl.NewReplaySource(failingReader{})
	_, err := src.Next()
	require.ErrorIs(t, err, vl.ErrSourceUnavailable)

	_, err = vl.Probe(vl.NewReplaySource(failingReader{}), vl.DefaultOptions())
	require.ErrorIs(t, err, vl.ErrSourceUnavailable)
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()
	_, err := vl.Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, vl.ErrSourceUnavailable)
}

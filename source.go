package vl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

// Line is one record of the input. Text never includes the line terminator;
// Ending holds it ("\n", "\r\n", "\r" or "" for a final unterminated line).
type Line struct {
	Index  int
	Text   string
	Ending string
}

// Raw returns the line exactly as it appeared in the input.
func (l Line) Raw() string { return l.Text + l.Ending }

// Source is a sequential line reader that can be restarted from the first
// line. Next returns io.EOF once the input is exhausted.
type Source interface {
	Next() (Line, error)
	Reset() error
}

// Lines returns an iterator over the remaining lines of src. A read error is
// yielded once as the final element.
func Lines(src Source) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		for {
			line, err := src.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Line{}, err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

func readLine(r *bufio.Reader, index int) (Line, error) {
	s, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Line{}, fmt.Errorf("%w: read line %d: %s", ErrSourceUnavailable, index, err)
	}
	if s == "" {
		return Line{}, io.EOF
	}
	line := Line{Index: index, Text: s}
	switch {
	case strings.HasSuffix(s, "\r\n"):
		line.Text, line.Ending = s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		line.Text, line.Ending = s[:len(s)-1], s[len(s)-1:]
	}
	return line, nil
}

// SeekSource reads lines from a seekable stream and restarts by seeking to
// offset zero.
type SeekSource struct {
	rs   io.ReadSeeker
	r    *bufio.Reader
	next int
}

// NewSeekSource returns a Source over rs, starting at its current offset.
func NewSeekSource(rs io.ReadSeeker) *SeekSource {
	return &SeekSource{rs: rs, r: bufio.NewReader(rs)}
}

// Next returns the next line.
func (s *SeekSource) Next() (Line, error) {
	line, err := readLine(s.r, s.next)
	if err != nil {
		return Line{}, err
	}
	s.next++
	return line, nil
}

// Reset seeks back to the start of the stream.
func (s *SeekSource) Reset() error {
	if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("%w: rewind: %s", ErrSourceUnavailable, err)
	}
	s.r.Reset(s.rs)
	s.next = 0
	return nil
}

// ReplaySource reads lines from a stream that cannot be rewound. Lines read
// before the first Reset are kept and replayed afterwards; reading then
// continues from the stream. Only the kept prefix can be replayed, so a
// second Reset fails once the stream has moved past it.
type ReplaySource struct {
	r      *bufio.Reader
	kept   []Line
	replay bool
	pos    int
	next   int
}

// NewReplaySource returns a Source over r.
func NewReplaySource(r io.Reader) *ReplaySource {
	return &ReplaySource{r: bufio.NewReader(r)}
}

// Next returns the next line, from the kept prefix when replaying.
func (s *ReplaySource) Next() (Line, error) {
	if s.replay && s.pos < len(s.kept) {
		line := s.kept[s.pos]
		s.pos++
		return line, nil
	}
	line, err := readLine(s.r, s.next)
	if err != nil {
		return Line{}, err
	}
	s.next++
	if !s.replay {
		s.kept = append(s.kept, line)
	}
	return line, nil
}

// Reset restarts from the first line.
func (s *ReplaySource) Reset() error {
	if s.replay && s.next > len(s.kept) {
		return fmt.Errorf("%w: stream advanced past the %d replayable lines", ErrSourceUnavailable, len(s.kept))
	}
	s.replay = true
	s.pos = 0
	return nil
}

// Buffered reports the number of lines kept for replay.
func (s *ReplaySource) Buffered() int { return len(s.kept) }

// File is a SeekSource backed by an open file.
type File struct {
	*SeekSource
	f *os.File
}

// Open opens the named file for reading as a Source.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	}
	return &File{SeekSource: NewSeekSource(f), f: f}, nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.f.Name() }

// Close closes the underlying file.
func (f *File) Close() error { return f.f.Close() }

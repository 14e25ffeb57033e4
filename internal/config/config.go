// Package config resolves the settings of a run from built-in defaults, an
// optional YAML file and command-line overrides, and compiles them into
// [vl.Options].
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bjaus/vl"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSetting is returned for values no run can use.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings is the uncompiled form of [vl.Options], as written in a config
// file.
type Settings struct {
	Separator  string `yaml:"separator"`
	Comment    string `yaml:"comment"`
	Padding    int    `yaml:"padding"`
	Skip       int    `yaml:"skip"`
	ProbeLines int    `yaml:"probe_lines"`
	Align      string `yaml:"align"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Separator:  vl.DefaultSeparator,
		Comment:    vl.DefaultComment,
		Padding:    vl.DefaultPadding,
		ProbeLines: vl.DefaultProbeLines,
		Align:      vl.AlignLeft.String(),
	}
}

// Decode overlays the YAML document read from r onto s. Keys absent from
// the document keep their current value; unknown keys are an error.
func (s Settings) Decode(r io.Reader) (Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// LoadFile reads the config file at path on top of [Defaults].
func LoadFile(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Defaults(), fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	s, err := Defaults().Decode(f)
	if err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// DefaultPath returns the per-user config file location, or "" when the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vl", "config.yaml")
}

// Validate rejects negative counts and unknown alignments.
func (s Settings) Validate() error {
	for _, n := range []struct {
		name  string
		value int
	}{
		{"padding", s.Padding},
		{"skip", s.Skip},
		{"probe_lines", s.ProbeLines},
	} {
		if n.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidSetting, n.name, n.value)
		}
	}
	if _, err := vl.ParseAlignment(s.Align); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSetting, err)
	}
	return nil
}

// Compile validates s and builds the run options. A pattern that fails to
// compile is replaced by its default and reported in the returned warnings.
func (s Settings) Compile() (vl.Options, []string, error) {
	if err := s.Validate(); err != nil {
		return vl.Options{}, nil, err
	}
	var warnings []string
	sep, warn := compileOrDefault(s.Separator, vl.DefaultSeparator)
	if warn != "" {
		warnings = append(warnings, warn)
	}
	comment, warn := compileOrDefault(s.Comment, vl.DefaultComment)
	if warn != "" {
		warnings = append(warnings, warn)
	}
	align, _ := vl.ParseAlignment(s.Align)
	return vl.Options{
		Separator:  sep,
		Comment:    comment,
		Padding:    s.Padding,
		Skip:       s.Skip,
		ProbeLines: s.ProbeLines,
		Align:      align,
	}, warnings, nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/bjaus/vl"
	"github.com/bjaus/vl/internal/config"
	"github.com/bjaus/vl/internal/version"
	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
	"github.com/spf13/cobra"
)

var errNoFilename = errors.New("no filename found")

type app struct {
	settings   config.Settings
	configPath string
	verbose    bool
	quiet      bool

	log  *ll.Logger
	opts vl.Options
}

func newRootCmd() *cobra.Command {
	a := &app{settings: config.Defaults()}
	cmd := &cobra.Command{
		Use:   "vl [flags] FILE",
		Short: "Align delimiter-separated columns for viewing in a terminal",
		Long: `vl pads every field of a delimiter-separated file to the width of the
widest value in its column. Widths are estimated from the first data lines
and widened while rendering when a later line is wider. Skipped and comment
lines are printed unchanged. Use "-" as FILE to read standard input.`,
		Args:              requireFile,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.align(cmd, args[0])
		},
	}

	fl := cmd.PersistentFlags()
	fl.StringVarP(&a.settings.Separator, "separator", "s", a.settings.Separator, "regex to match the separator")
	fl.IntVarP(&a.settings.Padding, "padding", "p", a.settings.Padding, "number of spaces that separate the columns")
	fl.IntVarP(&a.settings.Skip, "skip", "k", a.settings.Skip, "number of top lines to pass through unchanged")
	fl.StringVarP(&a.settings.Comment, "comment", "c", a.settings.Comment, "regex to match lines to pass through unchanged")
	fl.IntVarP(&a.settings.ProbeLines, "probe-lines", "n", a.settings.ProbeLines, "number of data lines used for fast width estimation")
	fl.StringVarP(&a.settings.Align, "align", "a", a.settings.Align, "justification within a column: left, right or center")
	fl.StringVar(&a.configPath, "config", "", "path to a YAML config file (default: user config dir vl/config.yaml)")
	fl.BoolVarP(&a.verbose, "verbose", "v", false, "log run statistics to stderr")
	fl.BoolVarP(&a.quiet, "quiet", "q", false, "suppress warnings")

	cmd.AddCommand(newWidthsCmd(a), newVersionCmd())
	return cmd
}

func requireFile(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errNoFilename
	}
	return cobra.ExactArgs(1)(cmd, args)
}

// setup resolves settings as defaults < config file < flags set on the
// command line, then compiles them.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log = ll.New("vl").Handler(lh.NewTextHandler(cmd.ErrOrStderr()))
	if a.quiet {
		a.log.Disable()
	} else {
		a.log.Enable()
	}

	base, err := a.loadSettings()
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	for name, apply := range map[string]func(){
		"separator":   func() { base.Separator = a.settings.Separator },
		"padding":     func() { base.Padding = a.settings.Padding },
		"skip":        func() { base.Skip = a.settings.Skip },
		"comment":     func() { base.Comment = a.settings.Comment },
		"probe-lines": func() { base.ProbeLines = a.settings.ProbeLines },
		"align":       func() { base.Align = a.settings.Align },
	} {
		if fl.Changed(name) {
			apply()
		}
	}

	opts, warnings, err := base.Compile()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		a.log.Warnf("%s", w)
	}
	a.opts = opts
	return nil
}

func (a *app) loadSettings() (config.Settings, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}
	path := config.DefaultPath()
	if path == "" {
		return config.Defaults(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return config.Defaults(), nil
	}
	if a.verbose {
		a.log.Infof("using config %s", path)
	}
	return config.LoadFile(path)
}

// openSource opens path, or standard input for "-". The returned close
// function is always safe to call.
func openSource(cmd *cobra.Command, path string) (vl.Source, func() error, error) {
	if path == "-" {
		return vl.NewReplaySource(cmd.InOrStdin()), func() error { return nil }, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("file %q not found", path)
	}
	f, err := vl.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func (a *app) align(cmd *cobra.Command, path string) (err error) {
	src, closeSrc, err := openSource(cmd, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeSrc(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	out := bufio.NewWriter(cmd.OutOrStdout())
	widths, stats, err := vl.Align(src, out, a.opts)
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("%w: %s", vl.ErrSinkWrite, ferr)
	}
	if err != nil {
		return err
	}
	if a.verbose {
		a.log.Infof("%d lines: %d rows, %d passthrough, %d columns, %d widenings while rendering",
			stats.Lines, stats.Rows, stats.Passthrough, widths.Len(), stats.Widened)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "vl", version.String())
			return err
		},
	}
}

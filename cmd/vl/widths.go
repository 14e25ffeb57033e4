package main

import (
	"io"

	"github.com/bjaus/vl"
	"github.com/bjaus/vl/internal/report"
	"github.com/spf13/cobra"
)

func newWidthsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "widths [flags] FILE",
		Short: "Compare probed column widths with the widths after a full pass",
		Long: `widths runs the probe, then a full render into a discarded sink, and
reports for every column the probed estimate and the final width. Columns
marked as realigned were widened mid-stream, so rows before the widening
line are narrower than the rest.`,
		Args: requireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			cols, err := a.widths(cmd, args[0])
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), f, cols...)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(report.Table), "output format: table, plain, markdown, csv, tsv, json, jsonl or yaml")
	return cmd
}

func (a *app) widths(cmd *cobra.Command, path string) (cols []report.Column, err error) {
	src, closeSrc, err := openSource(cmd, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closeSrc(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	widths, err := vl.Probe(src, a.opts)
	if err != nil {
		return nil, err
	}
	probed := widths.Clone()
	stats, err := vl.Render(src, a.opts, widths, io.Discard)
	if err != nil {
		return nil, err
	}
	if a.verbose {
		a.log.Infof("%d rows measured, %d widenings after the probe", stats.Rows, stats.Widened)
	}
	return report.Columns(probed, widths), nil
}

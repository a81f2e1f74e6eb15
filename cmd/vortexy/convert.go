package main

import (
	"path/filepath"
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy"
	"github.com/spf13/cobra"
)

var convertOutput string

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [input.xlsx]...",
		Short: "Convert measurement tables to curves JSON",
		Long: `Convert each measurement table into a {fan: samples} JSON file.
Each output is written next to its input with a .json extension unless
--output is given for a single input.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}
	cmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path (single input only)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	report := &vortexy.Report{}
	for _, input := range args {
		outputPath := convertOutput
		if outputPath == "" || len(args) > 1 {
			outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".json"
		}
		_, err := vortexy.ConvertCurves(input, outputPath, opts)
		report.Record(input, "convert", err)
	}
	return finish(report)
}

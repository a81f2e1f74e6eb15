package main

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy"
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [input-dir] [output-dir]",
		Short: "Rank fans by temperature at the target noise and write sorted workbooks",
		Long: `Rank the fans of every table in input-dir by their temperature at the
target noise level (interpolated, or extrapolated outside the measured range)
and write each table to output-dir with fan groups ordered coolest first.`,
		Args: cobra.ExactArgs(2),
		RunE: runSort,
	}
}

func runSort(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	report, err := vortexy.SortDirectory(args[0], args[1], opts)
	if err != nil {
		return err
	}
	return finish(report)
}

package main

import (
	"fmt"
	"strconv"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/spf13/cobra"
)

var (
	oldRef float64
	newRef float64
)

func newNoiseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noise [dBA]...",
		Short: "Shift readings to a new ambient noise reference",
		Long: `Re-express noise readings measured against one ambient floor relative to
another. The power difference between the two references is subtracted from
each reading in the linear power domain.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runNoise,
	}
	cmd.Flags().Float64Var(&oldRef, "old-ref", 0, "Ambient noise of the original measurement (dBA)")
	cmd.Flags().Float64Var(&newRef, "new-ref", 0, "Ambient noise to normalize to (dBA)")
	_ = cmd.MarkFlagRequired("old-ref")
	_ = cmd.MarkFlagRequired("new-ref")
	return cmd
}

func runNoise(cmd *cobra.Command, args []string) error {
	targets := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid reading %q: %w", arg, err)
		}
		targets[i] = v
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "power difference: %.4f\n", analysis.PowerDiff(oldRef, newRef))

	for i, reading := range analysis.Normalize(oldRef, newRef, targets) {
		if !reading.Valid {
			fmt.Fprintf(out, "%.2f dBA -> invalid (no power left after subtraction)\n", targets[i])
			continue
		}
		fmt.Fprintf(out, "%.2f dBA -> %.4f dBA (%+.4f)\n", targets[i], reading.DB, reading.DB-targets[i])
	}
	return nil
}

package main

import (
	"errors"

	"github.com/Skywalker144/Vortexy/pkg/vortexy"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every job of the config file",
		Long: `Run the curves, manifest, projects, sort, fandb and plots jobs of the
file given with --config, in that order.`,
		Args: cobra.NoArgs,
		RunE: runJobs,
	}
}

func runJobs(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		return errors.New("run requires --config")
	}

	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return finish(vortexy.Run(cfg, opts))
}

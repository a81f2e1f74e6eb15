package main

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy"
	"github.com/spf13/cobra"
)

var (
	projectsOutput   string
	projectsUnsorted bool
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects [dir or file]...",
		Short: "Aggregate measurement tables into one nested projects JSON",
		Long: `Aggregate tables into {project: {fan: samples}}, one project per file.
Directories contribute every xlsx/csv file they contain.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runProjectsCmd,
	}
	cmd.Flags().StringVarP(&projectsOutput, "output", "o", "data.json", "Output file path")
	cmd.Flags().BoolVar(&projectsUnsorted, "unsorted", false, "Keep samples in sheet order instead of sorting by noise")
	return cmd
}

func runProjectsCmd(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	opts.SortByNoise = !projectsUnsorted

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}

	projects, report := vortexy.BuildProjects(inputs, opts)
	report.Record(projectsOutput, "write", vortexy.WriteProjects(projects, projectsOutput, opts))
	return finish(report)
}

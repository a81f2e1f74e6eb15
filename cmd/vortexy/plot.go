package main

import (
	"path/filepath"
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy"
	"github.com/spf13/cobra"
)

var (
	plotOutput string
	plotTitle  string
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [input.xlsx]",
		Short: "Render a chart of the measured curves",
		Long: `Render temperature against noise for every fan of a table, marking the
estimate at the target noise. The image format follows the output extension
(.png, .svg or .pdf).`,
		Args: cobra.ExactArgs(1),
		RunE: runPlot,
	}
	cmd.Flags().StringVarP(&plotOutput, "output", "o", "", "Output image path (default: input name with .png)")
	cmd.Flags().StringVar(&plotTitle, "title", "", "Chart title (default: input file name)")
	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	outputPath := plotOutput
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	return vortexy.RenderPlot(input, outputPath, plotTitle, opts)
}

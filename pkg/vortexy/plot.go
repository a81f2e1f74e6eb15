package vortexy

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
)

// RenderPlot draws the metric-vs-noise curves of one table to an image file,
// marking each fan's estimate at the target noise. An empty title uses the
// input file name.
func RenderPlot(inputPath, outputPath, title string, opts Options) error {
	log := opts.Log().WithField("file", inputPath)

	set, err := ParseFans(inputPath, opts)
	if err != nil {
		return err
	}
	ranked, _ := RankFans(set, opts, log)

	plotOpts := output.DefaultPlotOptions()
	plotOpts.Title = title
	if plotOpts.Title == "" {
		plotOpts.Title = projectName(inputPath)
	}
	plotOpts.TargetNoise = opts.Target()

	if err := output.RenderCurves(set.Fans(), ranked, plotOpts, outputPath); err != nil {
		return NewFileError(outputPath, "render", err)
	}

	log.WithField("output", outputPath).Info("Saved chart")
	return nil
}

package output

import (
	"fmt"
	"math"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotOptions configures curve chart rendering.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	// TargetNoise is marked with a vertical line when positive.
	TargetNoise float64
	// Width and Height are the image size in inches.
	Width  float64
	Height float64
}

// DefaultPlotOptions returns options for a metric-vs-noise chart.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		XLabel:      "Noise (dBA)",
		YLabel:      "Temperature (°C)",
		TargetNoise: analysis.DefaultTargetNoise,
		Width:       8,
		Height:      5,
	}
}

// RenderCurves draws one metric-vs-noise line per fan and marks the ranked
// estimates at the target noise. The image format follows the extension of
// path (png, svg, pdf, ...).
func RenderCurves(fans []models.Fan, ranked []models.RankedFan, opts PlotOptions, path string) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, fan := range fans {
		if len(fan.Samples) == 0 {
			continue
		}

		samples := analysis.SortByNoise(fan.Samples)
		pts := make(plotter.XYs, len(samples))
		for j, s := range samples {
			pts[j].X = s.Noise
			pts[j].Y = s.Metric
			minY = math.Min(minY, s.Metric)
			maxY = math.Max(maxY, s.Metric)
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return fmt.Errorf("fan %q: %w", fan.Name, err)
		}
		c := plotutil.Color(i)
		line.Color = c
		points.Color = c
		points.Shape = plotutil.Shape(i)

		p.Add(line, points)
		p.Legend.Add(fan.Name, line, points)
	}

	if len(ranked) > 0 {
		marks := make(plotter.XYs, len(ranked))
		for i, r := range ranked {
			marks[i].X = opts.TargetNoise
			marks[i].Y = r.MetricAt
			minY = math.Min(minY, r.MetricAt)
			maxY = math.Max(maxY, r.MetricAt)
		}
		scatter, err := plotter.NewScatter(marks)
		if err != nil {
			return err
		}
		scatter.Shape = draw.CrossGlyph{}
		scatter.Radius = vg.Points(4)
		p.Add(scatter)
	}

	if opts.TargetNoise > 0 && minY <= maxY {
		target, err := plotter.NewLine(plotter.XYs{
			{X: opts.TargetNoise, Y: minY},
			{X: opts.TargetNoise, Y: maxY},
		})
		if err != nil {
			return err
		}
		target.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(target)
		p.Legend.Add(fmt.Sprintf("%g dBA", opts.TargetNoise), target)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultPlotOptions().Width, DefaultPlotOptions().Height
	}
	return p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
}

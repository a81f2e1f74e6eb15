package vortexy

import (
	"path/filepath"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

// Run executes every job of cfg in order: curves, manifest, projects, sort,
// fan database and plots. Shared settings come from opts, so callers apply
// the config with Config.Apply first. Failures are collected per file; a
// failed file never stops the rest of the run.
func Run(cfg *Config, opts Options) *Report {
	report := &Report{}

	var manifest []models.Project
	for _, job := range cfg.Curves {
		jobOpts := opts
		jobOpts.Sheet = job.Sheet
		_, err := ConvertCurves(job.Input, job.Output, jobOpts)
		report.Record(job.Input, "convert", err)

		if err == nil && job.Project != nil {
			entry := *job.Project
			if entry.DataFile == "" {
				entry.DataFile = filepath.Base(job.Output)
			}
			if entry.Name == "" {
				entry.Name = projectName(job.Input)
			}
			manifest = append(manifest, entry)
		}
	}

	if cfg.Manifest != "" {
		report.Record(cfg.Manifest, "write", WriteManifest(manifest, cfg.Manifest, opts))
	}

	if job := cfg.Projects; job != nil {
		report.Merge(runProjects(job, opts))
	}

	if job := cfg.Sort; job != nil {
		sortReport, err := SortDirectory(job.InputDir, job.OutputDir, opts)
		if err != nil {
			report.Record(job.InputDir, "sort", err)
		}
		report.Merge(sortReport)
	}

	if job := cfg.FanDB; job != nil {
		_, err := BuildFanDatabase(job.Input, job.Output, opts)
		report.Record(job.Input, "build", err)
	}

	for _, job := range cfg.Plots {
		report.Record(job.Input, "render", RenderPlot(job.Input, job.Output, job.Title, opts))
	}

	return report
}

func runProjects(job *ProjectsJob, opts Options) *Report {
	report := &Report{}

	inputs := job.Inputs
	if job.InputDir != "" {
		listed, err := ListInputs(job.InputDir)
		if err != nil {
			report.Record(job.InputDir, "list", err)
			return report
		}
		inputs = append(inputs, listed...)
	}

	if job.SortByNoise != nil {
		opts.SortByNoise = *job.SortByNoise
	}

	projects, built := BuildProjects(inputs, opts)
	report.Merge(built)
	report.Record(job.Output, "write", WriteProjects(projects, job.Output, opts))
	return report
}

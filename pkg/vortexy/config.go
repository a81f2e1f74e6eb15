package vortexy

import (
	"fmt"
	"os"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"gopkg.in/yaml.v3"
)

// Config describes a batch run: shared settings plus the jobs to execute.
type Config struct {
	TargetNoise *float64 `yaml:"target_noise"` // dBA (default: 41)
	Precision   *int     `yaml:"precision"`    // JSON decimal places; omit to keep raw values
	LogLevel    string   `yaml:"log_level"`    // logrus level name (default: info)
	PointOrder  string   `yaml:"point_order"`  // noise-first or metric-first
	Pretty      *bool    `yaml:"pretty"`       // Indent JSON (default: true)

	Curves   []CurveJob   `yaml:"curves"`
	Manifest string       `yaml:"manifest"` // projects.json path, written from curve jobs with a project
	Projects *ProjectsJob `yaml:"projects"`
	Sort     *SortJob     `yaml:"sort"`
	FanDB    *FanDBJob    `yaml:"fandb"`
	Plots    []PlotJob    `yaml:"plots"`
}

// CurveJob converts one table into a curves JSON file.
type CurveJob struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Sheet  string `yaml:"sheet"`
	// Project, when set, adds an entry to the manifest. Its data file
	// defaults to the output file name.
	Project *models.Project `yaml:"project"`
}

// ProjectsJob aggregates many tables into one nested JSON file.
type ProjectsJob struct {
	InputDir    string   `yaml:"input_dir"`
	Inputs      []string `yaml:"inputs"`
	Output      string   `yaml:"output"`
	SortByNoise *bool    `yaml:"sort_by_noise"` // default: true
}

// SortJob ranks every table of a directory into sorted workbooks.
type SortJob struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
}

// FanDBJob converts the fan specification table.
type FanDBJob struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// PlotJob renders one table's curves to an image.
type PlotJob struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Title  string `yaml:"title"`
}

// LoadConfig loads a batch configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not specified
	if config.TargetNoise == nil {
		target := analysis.DefaultTargetNoise
		config.TargetNoise = &target
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.Pretty == nil {
		pretty := true
		config.Pretty = &pretty
	}
	if config.Projects != nil && config.Projects.SortByNoise == nil {
		sortByNoise := true
		config.Projects.SortByNoise = &sortByNoise
	}

	if _, err := output.ParsePointOrder(config.PointOrder); err != nil {
		return nil, fmt.Errorf("failed to parse point_order: %w", err)
	}

	for i, job := range config.Curves {
		if job.Input == "" || job.Output == "" {
			return nil, fmt.Errorf("curves[%d]: input and output are required", i)
		}
	}
	for i, job := range config.Plots {
		if job.Input == "" || job.Output == "" {
			return nil, fmt.Errorf("plots[%d]: input and output are required", i)
		}
	}
	if config.Projects != nil && config.Projects.Output == "" {
		return nil, fmt.Errorf("projects: output is required")
	}
	if config.Sort != nil && (config.Sort.InputDir == "" || config.Sort.OutputDir == "") {
		return nil, fmt.Errorf("sort: input_dir and output_dir are required")
	}
	if config.FanDB != nil && (config.FanDB.Input == "" || config.FanDB.Output == "") {
		return nil, fmt.Errorf("fandb: input and output are required")
	}

	return &config, nil
}

// Apply copies the shared settings of the config onto opts.
func (c *Config) Apply(opts Options) Options {
	if c.TargetNoise != nil {
		target := *c.TargetNoise
		opts.TargetNoise = &target
	}
	if c.Precision != nil {
		opts.Precision = c.Precision
	}
	if order, err := output.ParsePointOrder(c.PointOrder); err == nil && c.PointOrder != "" {
		opts.PointOrder = order
	}
	if c.Pretty != nil {
		opts.Pretty = *c.Pretty
	}
	return opts
}

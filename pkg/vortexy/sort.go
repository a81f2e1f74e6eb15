package vortexy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"github.com/sirupsen/logrus"
)

// SortResult is the outcome of sorting one workbook.
type SortResult struct {
	// Ranked holds the fans in output order.
	Ranked []models.RankedFan
	// Skipped holds the fans without an estimate at the target noise.
	Skipped []models.SkippedFan
	// Written is false when no fan could be ranked and no file was saved.
	Written bool
}

// RankFans ranks the fans of set at the target noise and logs the result.
func RankFans(set *models.FanSet, opts Options, log logrus.FieldLogger) ([]models.RankedFan, []models.SkippedFan) {
	target := opts.Target()
	ranked, skipped := analysis.Rank(set, target)

	for _, s := range skipped {
		log.WithField("fan", s.Name).WithError(s.Reason).
			Warnf("Cannot estimate metric at %g dBA, skipping", target)
	}
	for _, r := range ranked {
		log.WithField("fan", r.Name).Infof("%.2f @ %g dBA", r.MetricAt, target)
	}
	return ranked, skipped
}

// SortWorkbook ranks the fans of one table by their metric at the target
// noise and writes them to outputPath as xlsx, lowest first. When no fan
// can be ranked the file is skipped without error.
func SortWorkbook(inputPath, outputPath string, opts Options) (*SortResult, error) {
	log := opts.Log().WithField("file", inputPath)

	set, err := ParseFans(inputPath, opts)
	if err != nil {
		return nil, err
	}

	ranked, skipped := RankFans(set, opts, log)
	result := &SortResult{Ranked: ranked, Skipped: skipped}
	if len(ranked) == 0 {
		log.Warn("No rankable fans, skipping file")
		return result, nil
	}

	if err := output.WriteRankedWorkbook(ranked, outputPath); err != nil {
		return nil, NewFileError(outputPath, "write", err)
	}
	result.Written = true

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}
	log.WithFields(logrus.Fields{
		"output": outputPath,
		"order":  strings.Join(names, " < "),
	}).Info("Saved sorted workbook")

	return result, nil
}

// SortDirectory sorts every table in inputDir into an xlsx file of the same
// name in outputDir. A file that fails is recorded in the report and the
// remaining files are still processed. When two inputs share a name (a.csv
// and a.xlsx) the first in name order is written and the other is recorded
// as failed with ErrOutputCollision.
func SortDirectory(inputDir, outputDir string, opts Options) (*Report, error) {
	inputs, err := ListInputs(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", inputDir, err)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInputs, inputDir)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &Report{}
	claimed := make(map[string]string)
	for _, path := range inputs {
		outputPath := filepath.Join(outputDir, projectName(path)+".xlsx")
		if first, ok := claimed[outputPath]; ok {
			report.Record(path, "sort", fmt.Errorf("%w: %s (from %s)", ErrOutputCollision, outputPath, filepath.Base(first)))
			continue
		}
		claimed[outputPath] = path

		_, err := SortWorkbook(path, outputPath, opts)
		report.Record(path, "sort", err)
	}
	return report, nil
}

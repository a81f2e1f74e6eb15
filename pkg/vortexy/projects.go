package vortexy

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"github.com/sirupsen/logrus"
)

// BuildProjects parses each input table as one project named after its file.
// Fans without samples are left out, and so are projects without fans.
// A file that cannot be read is recorded in the report and the remaining
// files are still processed.
func BuildProjects(inputs []string, opts Options) ([]models.ProjectData, *Report) {
	report := &Report{}
	var projects []models.ProjectData

	for _, path := range inputs {
		name := projectName(path)
		log := opts.Log().WithFields(logrus.Fields{"file": path, "project": name})

		set, err := ParseFans(path, opts)
		if err != nil {
			report.Record(path, "read", err)
			continue
		}

		fans := models.NewFanSet()
		for _, fan := range set.Fans() {
			if len(fan.Samples) > 0 {
				fans.Put(fan)
			}
		}
		report.Record(path, "", nil)

		if fans.Len() == 0 {
			log.Warn("No fan data, skipping project")
			continue
		}

		projects = append(projects, models.ProjectData{Name: name, Fans: fans})
		log.WithField("fans", fans.Len()).Info("Processed project")
	}

	return projects, report
}

// WriteProjects writes projects as a nested {project: {fan: samples}} JSON
// file.
func WriteProjects(projects []models.ProjectData, outputPath string, opts Options) error {
	jsonData, err := output.ProjectsToJSON(projects, opts.curveOptions())
	if err != nil {
		return NewFileError(outputPath, "serialize", err)
	}
	if err := writeFile(outputPath, jsonData); err != nil {
		return NewFileError(outputPath, "write", err)
	}

	opts.Log().WithFields(logrus.Fields{
		"output":   outputPath,
		"projects": len(projects),
	}).Info("Saved projects")
	return nil
}

// WriteManifest writes the project manifest read by the web front end.
func WriteManifest(projects []models.Project, outputPath string, opts Options) error {
	jsonData, err := output.ManifestToJSON(projects, opts.Pretty)
	if err != nil {
		return NewFileError(outputPath, "serialize", err)
	}
	if err := writeFile(outputPath, jsonData); err != nil {
		return NewFileError(outputPath, "write", err)
	}

	opts.Log().WithFields(logrus.Fields{
		"output":   outputPath,
		"projects": len(projects),
	}).Info("Saved project manifest")
	return nil
}

package vortexy

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/parser"
	"github.com/sirupsen/logrus"
)

// lastUpdatedLayout formats FanDatabaseMetadata.LastUpdated.
const lastUpdatedLayout = "2006-01-02 15:04:05"

// BuildFanDatabase converts the fan specification table at inputPath into
// the fan database JSON at outputPath.
func BuildFanDatabase(inputPath, outputPath string, opts Options) (*models.FanDatabase, error) {
	log := opts.Log().WithField("file", inputPath)

	grid, err := parser.LoadGrid(inputPath, opts.Sheet)
	if err != nil {
		return nil, NewFileError(inputPath, "read", err)
	}

	specs, err := parser.ParseFanDatabase(grid)
	if err != nil {
		return nil, NewFileError(inputPath, "parse", err)
	}
	for _, spec := range specs {
		log.WithField("fan", spec.Name).Debug("Processed fan")
	}

	db := &models.FanDatabase{
		Fans: specs,
		Metadata: models.FanDatabaseMetadata{
			Total:       len(specs),
			LastUpdated: opts.Clock().Format(lastUpdatedLayout),
		},
	}

	jsonData, err := output.FanDatabaseToJSON(db, opts.Pretty)
	if err != nil {
		return nil, NewFileError(inputPath, "serialize", err)
	}
	if err := writeFile(outputPath, jsonData); err != nil {
		return nil, NewFileError(outputPath, "write", err)
	}

	log.WithFields(logrus.Fields{
		"output": outputPath,
		"fans":   len(specs),
	}).Info("Saved fan database")

	return db, nil
}

package vortexy

import (
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"github.com/sirupsen/logrus"
)

// ConvertCurves converts one measurement table into a curves JSON file of
// the form {fan: samples}.
func ConvertCurves(inputPath, outputPath string, opts Options) (*models.FanSet, error) {
	set, err := ParseFans(inputPath, opts)
	if err != nil {
		return nil, err
	}

	jsonData, err := output.CurvesToJSON(set, opts.curveOptions())
	if err != nil {
		return nil, NewFileError(inputPath, "serialize", err)
	}

	if err := writeFile(outputPath, jsonData); err != nil {
		return nil, NewFileError(outputPath, "write", err)
	}

	opts.Log().WithFields(logrus.Fields{
		"file":   inputPath,
		"output": outputPath,
		"fans":   set.Len(),
	}).Info("Saved curves")

	return set, nil
}

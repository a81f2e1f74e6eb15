// Package vortexy converts fan measurement spreadsheets into JSON for web
// display, ranks fans by their temperature at a fixed noise level and
// builds the fan specification database.
package vortexy

import (
	"time"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/output"
	"github.com/sirupsen/logrus"
)

// Options configures processing behavior.
type Options struct {
	// TargetNoise is the noise level in dBA fans are ranked at.
	// If nil, defaults to analysis.DefaultTargetNoise.
	TargetNoise *float64
	// Precision is the number of decimal places curve JSON values are
	// rounded to. If nil, values keep full precision. Ranking, charts and
	// sorted workbooks always use the values as read.
	Precision *int
	// Sheet selects the workbook sheet to read. If empty, the first sheet.
	Sheet string
	// PointOrder is the element order of two-column curve points.
	PointOrder output.PointOrder
	// SortByNoise writes curve samples in ascending noise order.
	SortByNoise bool
	// Pretty indents JSON output.
	Pretty bool
	// Logger receives progress messages. If nil, the logrus standard logger.
	Logger logrus.FieldLogger
	// Now returns the current time. If nil, time.Now.
	Now func() time.Time
}

// DefaultOptions returns default processing options.
func DefaultOptions() Options {
	return Options{
		PointOrder: output.NoiseFirst,
		Pretty:     true,
	}
}

// Target returns the noise level fans are ranked at.
func (o Options) Target() float64 {
	if o.TargetNoise == nil {
		return analysis.DefaultTargetNoise
	}
	return *o.TargetNoise
}

// Log returns the configured logger.
func (o Options) Log() logrus.FieldLogger {
	if o.Logger == nil {
		return logrus.StandardLogger()
	}
	return o.Logger
}

// Clock returns the current time from the configured clock.
func (o Options) Clock() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o Options) curveOptions() output.CurveOptions {
	return output.CurveOptions{
		PointOrder:  o.PointOrder,
		SortByNoise: o.SortByNoise,
		Precision:   o.Precision,
		Pretty:      o.Pretty,
	}
}

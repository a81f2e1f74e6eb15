package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/analysis"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"github.com/Skywalker144/Vortexy/pkg/vortexy/parser"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// point is the JSON form of a three-column sample.
type point struct {
	Noise float64 `json:"noise"`
	Temp  float64 `json:"temp"`
	RPM   float64 `json:"rpm"`
}

// CurvesToJSON serializes a fan set as {name: samples} in set order.
// Two-column fans encode samples as [noise, metric] pairs (see PointOrder),
// three-column fans as {noise, temp, rpm} objects.
func CurvesToJSON(set *models.FanSet, opts CurveOptions) ([]byte, error) {
	return encode(curvesDocument(set, opts), opts.Pretty)
}

func curvesDocument(set *models.FanSet, opts CurveOptions) *orderedmap.OrderedMap[string, any] {
	doc := orderedmap.New[string, any]()
	for _, fan := range set.Fans() {
		doc.Set(fan.Name, encodeSamples(fan, opts))
	}
	return doc
}

func encodeSamples(fan models.Fan, opts CurveOptions) any {
	samples := fan.Samples
	if opts.SortByNoise {
		samples = analysis.SortByNoise(samples)
	}
	if opts.Precision != nil {
		samples = roundSamples(samples, *opts.Precision)
	}

	if fan.Width >= models.MaxGroupWidth {
		points := make([]point, len(samples))
		for i, s := range samples {
			points[i] = point{Noise: s.Noise, Temp: s.Metric, RPM: s.Tertiary}
		}
		return points
	}

	pairs := make([][2]float64, len(samples))
	for i, s := range samples {
		if opts.PointOrder == MetricFirst {
			pairs[i] = [2]float64{s.Metric, s.Noise}
		} else {
			pairs[i] = [2]float64{s.Noise, s.Metric}
		}
	}
	return pairs
}

// roundSamples returns a rounded copy of samples.
func roundSamples(samples []models.Sample, precision int) []models.Sample {
	rounded := make([]models.Sample, len(samples))
	for i, s := range samples {
		rounded[i] = models.Sample{
			Noise:    parser.Round(s.Noise, precision),
			Metric:   parser.Round(s.Metric, precision),
			Tertiary: parser.Round(s.Tertiary, precision),
		}
	}
	return rounded
}

// ParseCurves reads a document written by CurvesToJSON back into a fan set.
// order must match the order used when writing.
func ParseCurves(data []byte, order PointOrder) (*models.FanSet, error) {
	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("failed to parse curves: %w", err)
	}

	set := models.NewFanSet()
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		fan, err := decodeSamples(pair.Key, pair.Value, order)
		if err != nil {
			return nil, err
		}
		set.Put(fan)
	}
	return set, nil
}

func decodeSamples(name string, data json.RawMessage, order PointOrder) (models.Fan, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return models.Fan{}, fmt.Errorf("fan %q: %w", name, err)
	}

	fan := models.Fan{Name: name, Width: models.MinGroupWidth, Samples: make([]models.Sample, 0, len(items))}
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '{' {
			var p point
			if err := json.Unmarshal(item, &p); err != nil {
				return models.Fan{}, fmt.Errorf("fan %q: %w", name, err)
			}
			fan.Width = models.MaxGroupWidth
			fan.Samples = append(fan.Samples, models.Sample{Noise: p.Noise, Metric: p.Temp, Tertiary: p.RPM})
			continue
		}

		var pair [2]float64
		if err := json.Unmarshal(item, &pair); err != nil {
			return models.Fan{}, fmt.Errorf("fan %q: %w", name, err)
		}
		if order == MetricFirst {
			pair[0], pair[1] = pair[1], pair[0]
		}
		fan.Samples = append(fan.Samples, models.Sample{Noise: pair[0], Metric: pair[1]})
	}
	return fan, nil
}

// ProjectsToJSON serializes several fan sets as {project: {name: samples}},
// keeping the given project order.
func ProjectsToJSON(projects []models.ProjectData, opts CurveOptions) ([]byte, error) {
	doc := orderedmap.New[string, any]()
	for _, project := range projects {
		doc.Set(project.Name, curvesDocument(project.Fans, opts))
	}
	return encode(doc, opts.Pretty)
}

// ManifestToJSON serializes the project manifest read by the web front end.
func ManifestToJSON(projects []models.Project, pretty bool) ([]byte, error) {
	if projects == nil {
		projects = []models.Project{}
	}
	return encode(projects, pretty)
}

// FanDatabaseToJSON serializes the fan specification database.
func FanDatabaseToJSON(db *models.FanDatabase, pretty bool) ([]byte, error) {
	return encode(db, pretty)
}

// ParseFanDatabase reads a document written by FanDatabaseToJSON.
func ParseFanDatabase(data []byte) (*models.FanDatabase, error) {
	var db models.FanDatabase
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to parse fan database: %w", err)
	}
	return &db, nil
}

// encode writes v as UTF-8 JSON without HTML escaping.
func encode(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package fandb filters and sorts fan specification database records.
package fandb

import (
	"slices"
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

// Filter selects fan records. Empty criteria match everything; a record
// must satisfy every non-empty criterion.
type Filter struct {
	Thickness []float64
	Bearing   []string
	Size      []float64
	Brand     []string
	// Search matches a case-insensitive substring of the name.
	Search string
}

// Match reports whether spec satisfies the filter.
func (f Filter) Match(spec models.FanSpec) bool {
	if len(f.Thickness) > 0 && !containsNumber(f.Thickness, spec.Thickness) {
		return false
	}
	if len(f.Bearing) > 0 && !slices.Contains(f.Bearing, spec.Bearing) {
		return false
	}
	if len(f.Size) > 0 && !containsNumber(f.Size, spec.Size) {
		return false
	}
	if len(f.Brand) > 0 && !slices.Contains(f.Brand, spec.Brand) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(spec.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// Apply returns the records matching the filter, in their original order.
func (f Filter) Apply(specs []models.FanSpec) []models.FanSpec {
	result := []models.FanSpec{}
	for _, spec := range specs {
		if f.Match(spec) {
			result = append(result, spec)
		}
	}
	return result
}

// containsNumber reports whether v is set and listed. A record with no value
// never matches a non-empty list.
func containsNumber(values []float64, v *float64) bool {
	return v != nil && slices.Contains(values, *v)
}

package parser

import (
	"math"
	"strconv"
	"strings"
)

// DisplayPrecision is the number of decimal places used for display output.
const DisplayPrecision = 2

// parseNumber parses a cell as a finite float.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Round rounds v to the given number of decimal places.
// A negative precision returns v unchanged.
func Round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

package analysis

import "math"

// Reading is a decibel value corrected for ambient noise.
type Reading struct {
	// DB is the corrected level in dBA. Zero when Valid is false.
	DB float64
	// Valid is false when the source was quieter than the ambient change.
	Valid bool
}

// DBToPower converts a decibel level to linear power.
func DBToPower(db float64) float64 {
	return math.Pow(10, db/10)
}

// PowerToDB converts linear power to a decibel level.
func PowerToDB(power float64) float64 {
	return 10 * math.Log10(power)
}

// PowerDiff returns the ambient power removed when a reference source
// measured at oldRef reads newRef under new conditions. It is negative when
// the ambient noise increased.
func PowerDiff(oldRef, newRef float64) float64 {
	return DBToPower(oldRef) - DBToPower(newRef)
}

// Normalize converts readings taken under the old ambient condition to the
// new one, given the same reference source measured under both.
//
// The result has one Reading per target, in order. A target whose power does
// not exceed the ambient change has no valid level and is marked invalid;
// the other targets are unaffected. A single value is converted by passing
// a one-element slice.
func Normalize(oldRef, newRef float64, targets []float64) []Reading {
	diff := PowerDiff(oldRef, newRef)

	readings := make([]Reading, len(targets))
	for i, target := range targets {
		power := DBToPower(target) - diff
		if !(power > 0) || math.IsInf(power, 0) {
			continue
		}
		readings[i] = Reading{DB: PowerToDB(power), Valid: true}
	}
	return readings
}

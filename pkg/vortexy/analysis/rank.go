package analysis

import (
	"cmp"
	"slices"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

// Rank orders the fans of set by their metric at target, lowest first.
// Fans with equal metrics keep their order in set. Fans without an estimate
// are returned separately with the reason.
func Rank(set *models.FanSet, target float64) ([]models.RankedFan, []models.SkippedFan) {
	var (
		ranked  []models.RankedFan
		skipped []models.SkippedFan
	)

	for i, fan := range set.Fans() {
		metric, err := MetricAt(fan.Samples, target)
		if err != nil {
			skipped = append(skipped, models.SkippedFan{Name: fan.Name, Reason: err})
			continue
		}
		ranked = append(ranked, models.RankedFan{Fan: fan, MetricAt: metric, Index: i})
	}

	slices.SortStableFunc(ranked, func(a, b models.RankedFan) int {
		return cmp.Compare(a.MetricAt, b.MetricAt)
	})
	return ranked, skipped
}

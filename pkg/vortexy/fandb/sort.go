package fandb

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey is the record field to sort by.
type SortKey string

const (
	SortName      SortKey = "name"
	SortThickness SortKey = "thickness"
	SortSize      SortKey = "size"
	SortBrand     SortKey = "brand"
)

// Order is a sort key with a direction.
type Order struct {
	Key        SortKey
	Descending bool
}

// DefaultOrder sorts by name, ascending.
var DefaultOrder = Order{Key: SortName}

// ParseOrder parses "<key>-asc" or "<key>-desc", e.g. "thickness-desc".
// A bare key sorts ascending.
func ParseOrder(s string) (Order, error) {
	key, dir, _ := strings.Cut(s, "-")

	var order Order
	switch SortKey(key) {
	case SortName, SortThickness, SortSize, SortBrand:
		order.Key = SortKey(key)
	default:
		return Order{}, fmt.Errorf("invalid sort key: %q (must be name, thickness, size or brand)", key)
	}

	switch dir {
	case "", "asc":
	case "desc":
		order.Descending = true
	default:
		return Order{}, fmt.Errorf("invalid sort direction: %q (must be asc or desc)", dir)
	}
	return order, nil
}

// Sort returns a copy of specs ordered by order. Text fields use Chinese
// collation, so names sort by pinyin; missing numbers sort as zero. The
// sort is stable.
func Sort(specs []models.FanSpec, order Order) []models.FanSpec {
	sorted := slices.Clone(specs)
	collator := collate.New(language.SimplifiedChinese)

	compare := func(a, b models.FanSpec) int {
		switch order.Key {
		case SortThickness:
			return cmp.Compare(numberOrZero(a.Thickness), numberOrZero(b.Thickness))
		case SortSize:
			return cmp.Compare(numberOrZero(a.Size), numberOrZero(b.Size))
		case SortBrand:
			return collator.CompareString(a.Brand, b.Brand)
		default:
			return collator.CompareString(a.Name, b.Name)
		}
	}

	slices.SortStableFunc(sorted, func(a, b models.FanSpec) int {
		if order.Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return sorted
}

func numberOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

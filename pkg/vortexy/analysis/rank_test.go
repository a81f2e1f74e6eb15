package analysis

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

func rankingSet() *models.FanSet {
	set := models.NewFanSet()
	set.Put(models.Fan{Name: "hot", Width: 2, Samples: samples([2]float64{40, 60}, [2]float64{42, 58})})
	set.Put(models.Fan{Name: "lonely", Width: 2, Samples: samples([2]float64{41, 10})})
	set.Put(models.Fan{Name: "cool", Width: 2, Samples: samples([2]float64{40, 50}, [2]float64{42, 48})})
	set.Put(models.Fan{Name: "tie", Width: 2, Samples: samples([2]float64{39, 49}, [2]float64{43, 49})})
	set.Put(models.Fan{Name: "flat", Width: 2, Samples: samples([2]float64{44, 30}, [2]float64{44, 31})})
	set.Put(models.Fan{Name: "cool twin", Width: 2, Samples: samples([2]float64{41, 49})})
	return set
}

func TestRank(t *testing.T) {
	ranked, skipped := Rank(rankingSet(), DefaultTargetNoise)

	var names []string
	for _, r := range ranked {
		names = append(names, r.Name)
	}
	if want := []string{"cool", "tie", "hot"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("ranked %v, want %v", names, want)
	}
	if ranked[0].MetricAt != 49 || ranked[0].Index != 2 {
		t.Fatalf("unexpected first entry %+v", ranked[0])
	}

	var skippedNames []string
	for _, s := range skipped {
		skippedNames = append(skippedNames, s.Name)
		if !errors.Is(s.Reason, ErrUnavailable) {
			t.Fatalf("%s: expected ErrUnavailable, got %v", s.Name, s.Reason)
		}
	}
	if want := []string{"lonely", "flat", "cool twin"}; !reflect.DeepEqual(skippedNames, want) {
		t.Fatalf("skipped %v, want %v", skippedNames, want)
	}
}

func TestRankTiesKeepInsertionOrder(t *testing.T) {
	set := models.NewFanSet()
	for _, name := range []string{"c", "a", "b"} {
		set.Put(models.Fan{Name: name, Width: 2, Samples: samples([2]float64{40, 5}, [2]float64{42, 5})})
	}

	ranked, _ := Rank(set, DefaultTargetNoise)
	var names []string
	for _, r := range ranked {
		names = append(names, r.Name)
	}
	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("ranked %v, want %v", names, want)
	}
}

func TestRankDeterministic(t *testing.T) {
	set := rankingSet()
	first, _ := Rank(set, DefaultTargetNoise)
	second, _ := Rank(set, DefaultTargetNoise)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("rankings differ:\n%+v\n%+v", first, second)
	}
}

func TestRankEmpty(t *testing.T) {
	ranked, skipped := Rank(models.NewFanSet(), DefaultTargetNoise)
	if len(ranked) != 0 || len(skipped) != 0 {
		t.Fatalf("expected nothing, got %v %v", ranked, skipped)
	}
}

package fandb

import (
	"reflect"
	"testing"

	"github.com/Skywalker144/Vortexy/pkg/vortexy/models"
)

func ptr(v float64) *float64 { return &v }

func testSpecs() []models.FanSpec {
	return []models.FanSpec{
		{Name: "利民 TL-C12", Thickness: ptr(25), Size: ptr(120), Bearing: "FDB", Brand: "利民"},
		{Name: "Arctic P12 Max", Thickness: ptr(25), Size: ptr(120), Bearing: "FDB", Brand: "Arctic"},
		{Name: "Noctua NF-A12x15", Thickness: ptr(15), Size: ptr(120), Bearing: "SSO2", Brand: "Noctua"},
		{Name: "安钛克 T30", Thickness: ptr(30), Size: nil, Bearing: "Ball", Brand: "安钛克"},
	}
}

func names(specs []models.FanSpec) []string {
	var out []string
	for _, s := range specs {
		out = append(out, s.Name)
	}
	return out
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{"empty filter", Filter{}, []string{"利民 TL-C12", "Arctic P12 Max", "Noctua NF-A12x15", "安钛克 T30"}},
		{"thickness", Filter{Thickness: []float64{15, 30}}, []string{"Noctua NF-A12x15", "安钛克 T30"}},
		{"bearing and brand", Filter{Bearing: []string{"FDB"}, Brand: []string{"Arctic"}}, []string{"Arctic P12 Max"}},
		{"size skips missing", Filter{Size: []float64{120}}, []string{"利民 TL-C12", "Arctic P12 Max", "Noctua NF-A12x15"}},
		{"search is case insensitive", Filter{Search: "nf-a12"}, []string{"Noctua NF-A12x15"}},
		{"no match", Filter{Brand: []string{"Nobody"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := names(tt.filter.Apply(testSpecs()))
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Apply() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestSortNumeric(t *testing.T) {
	asc := Sort(testSpecs(), Order{Key: SortThickness})
	if got := names(asc); !reflect.DeepEqual(got, []string{"Noctua NF-A12x15", "利民 TL-C12", "Arctic P12 Max", "安钛克 T30"}) {
		t.Errorf("thickness asc = %v", got)
	}

	desc := Sort(testSpecs(), Order{Key: SortSize, Descending: true})
	if got := names(desc); got[len(got)-1] != "安钛克 T30" {
		t.Errorf("Expected missing size last in descending order, got %v", got)
	}
}

func TestSortNameCollation(t *testing.T) {
	specs := []models.FanSpec{{Name: "利民"}, {Name: "安钛克"}, {Name: "风冷"}}

	// Pinyin order: an, li, feng -> an < feng < li
	got := names(Sort(specs, Order{Key: SortName}))
	if want := []string{"安钛克", "风冷", "利民"}; !reflect.DeepEqual(got, want) {
		t.Errorf("name asc = %v, expected %v", got, want)
	}

	got = names(Sort(specs, Order{Key: SortName, Descending: true}))
	if want := []string{"利民", "风冷", "安钛克"}; !reflect.DeepEqual(got, want) {
		t.Errorf("name desc = %v, expected %v", got, want)
	}
}

func TestSortDoesNotModifyInput(t *testing.T) {
	specs := testSpecs()
	Sort(specs, Order{Key: SortBrand})
	if specs[0].Name != "利民 TL-C12" {
		t.Error("Sort modified its input")
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected Order
		wantErr  bool
	}{
		{"name-asc", Order{Key: SortName}, false},
		{"name", Order{Key: SortName}, false},
		{"thickness-desc", Order{Key: SortThickness, Descending: true}, false},
		{"brand-desc", Order{Key: SortBrand, Descending: true}, false},
		{"price-asc", Order{}, true},
		{"size-up", Order{}, true},
	}

	for _, tt := range tests {
		result, err := ParseOrder(tt.input)
		if (err != nil) != tt.wantErr || result != tt.expected {
			t.Errorf("ParseOrder(%q) = (%+v, %v), expected %+v", tt.input, result, err, tt.expected)
		}
	}
}

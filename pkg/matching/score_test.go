package matching

import (
	"math"
	"testing"

	"beauty-advisor-be/pkg/catalog"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreProduct(t *testing.T) {
	tests := []struct {
		name           string
		product        catalog.Product
		required       TagSet
		desired        TagSet
		contra         TagSet
		wantTotal      float64
		wantNormalized float64
	}{
		{
			name:     "one required plus one desired plus context bonus",
			product:  catalog.Product{Id: "A", Tags: []string{"dryness", "shine"}},
			required: NewTagSet("dryness"),
			desired:  NewTagSet("shine"),
			contra:   NewTagSet("heavy-oils"),
			// 3.0 + 1.0 + 0.7, normalized against 3*1 + 1*1 + 3.0.
			wantTotal:      4.7,
			wantNormalized: 4.7 / 7.0,
		},
		{
			name:           "required only",
			product:        catalog.Product{Id: "A", Tags: []string{"dryness"}},
			required:       NewTagSet("dryness"),
			desired:        NewTagSet(),
			contra:         NewTagSet(),
			wantTotal:      3.7,
			wantNormalized: 3.7 / 6.0,
		},
		{
			name:           "no tag overlap leaves the context bonus only",
			product:        catalog.Product{Id: "E"},
			required:       NewTagSet(),
			desired:        NewTagSet("shine"),
			contra:         NewTagSet(),
			wantTotal:      0.7,
			wantNormalized: 0.7 / 4.0,
		},
		{
			name:     "multi-required bonus at two matches",
			product:  catalog.Product{Id: "C", Tags: []string{"anti-frizz", "frizz-control"}},
			required: NewTagSet("anti-frizz", "frizz-control"),
			desired:  NewTagSet(),
			contra:   NewTagSet(),
			// 2*3.0 + 0.7 + 1.0 multi bonus; not humidity resistant,
			// so no frizz bonus. 7.7 over 2*3 + 3.0.
			wantTotal:      7.7,
			wantNormalized: 7.7 / 9.0,
		},
		{
			name:           "multi-desired bonus at two matches",
			product:        catalog.Product{Id: "A", Tags: []string{"shine", "volume"}},
			required:       NewTagSet(),
			desired:        NewTagSet("shine", "volume"),
			contra:         NewTagSet(),
			wantTotal:      2.0 + 0.7 + 0.5,
			wantNormalized: 3.2 / 5.0,
		},
		{
			name:           "contraindicated product loses the context bonus",
			product:        catalog.Product{Id: "B", Tags: []string{"dryness"}, Contraindications: []string{"heavy-oils"}},
			required:       NewTagSet("dryness"),
			desired:        NewTagSet(),
			contra:         NewTagSet("heavy-oils"),
			wantTotal:      3.0,
			wantNormalized: 3.0 / 6.0,
		},
		{
			name: "humidity-resistant product earns the frizz bonus",
			product: catalog.Product{
				Id: "C", Tags: []string{"anti-frizz"},
				Metadata: catalog.Metadata{HumidityResistant: true},
			},
			required:       NewTagSet("anti-frizz", "frizz-control"),
			desired:        NewTagSet(),
			contra:         NewTagSet(),
			wantTotal:      3.0 + 0.7 + 3.0,
			wantNormalized: 6.7 / 9.0,
		},
		{
			name: "humidity metadata is inert outside frizz requests",
			product: catalog.Product{
				Id: "A", Tags: []string{"dryness"},
				Metadata: catalog.Metadata{HumidityResistant: true},
			},
			required:       NewTagSet("dryness"),
			desired:        NewTagSet(),
			contra:         NewTagSet(),
			wantTotal:      3.7,
			wantNormalized: 3.7 / 6.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreProduct(tt.product, tt.required, tt.desired, tt.contra)
			if !almostEqual(got.TotalScore, tt.wantTotal) {
				t.Errorf("TotalScore = %v, want %v", got.TotalScore, tt.wantTotal)
			}
			if !almostEqual(got.NormalizedScore, tt.wantNormalized) {
				t.Errorf("NormalizedScore = %v, want %v", got.NormalizedScore, tt.wantNormalized)
			}
		})
	}
}

// Both tag sets empty would divide by the bare normalization buffer; the
// guard pins the normalized score to zero instead.
func TestScoreProductEmptySetsGuard(t *testing.T) {
	got := ScoreProduct(catalog.Product{Id: "A", Tags: []string{"shine"}}, NewTagSet(), NewTagSet(), NewTagSet())
	if got.NormalizedScore != 0 {
		t.Errorf("NormalizedScore = %v, want 0", got.NormalizedScore)
	}
	if !almostEqual(got.TotalScore, contextBonusValue) {
		t.Errorf("TotalScore = %v, want %v", got.TotalScore, contextBonusValue)
	}
}

func TestScoreProductNormalizedBounds(t *testing.T) {
	// Stack every bonus on a single required tag so the raw ratio would
	// exceed one: 3.0 + 0.7 + 3.0 humidity = 6.7 over 3 + 3.0 = 6.0.
	p := catalog.Product{
		Id: "C", Tags: []string{"anti-frizz"},
		Metadata: catalog.Metadata{HumidityResistant: true},
	}
	got := ScoreProduct(p, NewTagSet("anti-frizz"), NewTagSet(), NewTagSet())
	if got.NormalizedScore != 1 {
		t.Errorf("NormalizedScore = %v, want capped at 1", got.NormalizedScore)
	}
}

// Adding a matched desired tag never lowers the total.
func TestScoreProductMonotonicity(t *testing.T) {
	required := NewTagSet("dryness")
	contra := NewTagSet()

	base := ScoreProduct(catalog.Product{Id: "A", Tags: []string{"dryness"}}, required, NewTagSet("shine"), contra)
	more := ScoreProduct(catalog.Product{Id: "A2", Tags: []string{"dryness", "shine"}}, required, NewTagSet("shine"), contra)

	if more.TotalScore <= base.TotalScore {
		t.Errorf("extra matched tag did not raise the score: %v vs %v", more.TotalScore, base.TotalScore)
	}
}

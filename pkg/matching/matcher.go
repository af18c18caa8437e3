package matching

import (
	"sort"

	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/qualification"
	"beauty-advisor-be/pkg/questionbank"
)

// DefaultLimit is the recommendation count when the caller passes none.
const DefaultLimit = 3

// Recommendation is one ranked, localized catalog entry.
type Recommendation struct {
	Id                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Usage               string   `json:"usage"`
	Benefits            string   `json:"benefits"`
	Price               float64  `json:"price"`
	Currency            string   `json:"currency"`
	MatchScore          float64  `json:"match_score"` // normalized, 0..1
	MatchedRequiredTags []string `json:"matched_required_tags"`
	MatchedDesiredTags  []string `json:"matched_desired_tags"`
	Tags                []string `json:"tags"`
	Contraindications   []string `json:"contraindications"`
}

// Engine matches a completed answer set against the catalog. It is pure
// computation over the immutable catalog and question bank; safe for
// arbitrary concurrent use.
type Engine struct {
	catalog     *catalog.Store
	bank        *questionbank.Bank
	defaultLang string
}

func NewEngine(catalogStore *catalog.Store, bank *questionbank.Bank, defaultLang string) *Engine {
	return &Engine{
		catalog:     catalogStore,
		bank:        bank,
		defaultLang: defaultLang,
	}
}

// MatchProducts runs the full pipeline: category subset → extraction →
// hard filter → scoring → drop non-positive → rank → truncate → localize.
// An empty result is a valid outcome, never an error.
func (e *Engine) MatchProducts(answers qualification.Answers, category, language string, limit int) []Recommendation {
	if limit <= 0 {
		limit = DefaultLimit
	}

	contraindications := ExtractContraindications(e.bank, answers, category)
	requiredTags := ExtractRequiredTags(e.bank, answers, category)
	desiredTags := ExtractDesiredTags(e.bank, answers, category)

	eligible := ApplyHardFilters(e.catalog.ByCategory(category), contraindications, requiredTags)

	scores := make([]Score, 0, len(eligible))
	for _, p := range eligible {
		s := ScoreProduct(p, requiredTags, desiredTags, contraindications)
		if s.TotalScore <= 0 {
			// Passed the hard filter but matched nothing worth recommending.
			continue
		}
		scores = append(scores, s)
	}

	// Stable keeps catalog insertion order for ties.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore > scores[j].TotalScore
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}

	out := make([]Recommendation, 0, len(scores))
	for _, s := range scores {
		out = append(out, e.localize(s, language))
	}
	return out
}

func (e *Engine) localize(s Score, language string) Recommendation {
	p := s.Product
	return Recommendation{
		Id:                  p.Id,
		Name:                p.Name.Resolve(language, e.defaultLang),
		Description:         p.Description.Resolve(language, e.defaultLang),
		Usage:               p.Usage.Resolve(language, e.defaultLang),
		Benefits:            p.Benefits.Resolve(language, e.defaultLang),
		Price:               p.Price,
		Currency:            p.Currency,
		MatchScore:          s.NormalizedScore,
		MatchedRequiredTags: s.MatchedRequiredTags,
		MatchedDesiredTags:  s.MatchedDesiredTags,
		Tags:                p.Tags,
		Contraindications:   p.Contraindications,
	}
}

package matching

import "beauty-advisor-be/pkg/catalog"

// Scoring weights. The humidity bonus is a deliberate domain heuristic:
// humidity-resistant (oil/serum type) products physically outperform purely
// moisturizing products for frizz control, so they must outrank them even
// when both carry the same tag.
const (
	requiredTagWeight   = 3.0
	desiredTagWeight    = 1.0
	contextBonusValue   = 0.7
	multiRequiredBonus  = 1.0
	multiDesiredBonus   = 0.5
	humidityBonus       = 3.0
	normalizationBuffer = 3.0 // generous context-bonus ceiling; loose on purpose
)

// frizzTags trigger the humidity-resistance bonus when requested as required.
var frizzTags = []string{"anti-frizz", "frizz-control", "smooth"}

// Score is the per-product scoring breakdown. Derived, never stored;
// recomputed on every recommendations call.
type Score struct {
	Product             *catalog.Product
	RequiredTagScore    float64
	DesiredTagScore     float64
	ContextBonus        float64
	TotalScore          float64
	NormalizedScore     float64
	MatchedRequiredTags []string
	MatchedDesiredTags  []string
}

// ScoreProduct scores a single product against the extracted tag sets.
//
// The context bonus is granted whenever the product is safe for this user:
// no contraindications at all, or none intersecting the user's. The unsafe
// branch is normally unreachable when scoring runs after ApplyHardFilters,
// but scoring is also invoked standalone (tooling, debugging), so the check
// stays.
func ScoreProduct(product catalog.Product, requiredTags, desiredTags, userContraindications TagSet) Score {
	matchedRequired := requiredTags.Intersect(product.Tags)
	matchedDesired := desiredTags.Intersect(product.Tags)

	score := Score{
		Product:             &product,
		RequiredTagScore:    requiredTagWeight * float64(len(matchedRequired)),
		DesiredTagScore:     desiredTagWeight * float64(len(matchedDesired)),
		MatchedRequiredTags: matchedRequired,
		MatchedDesiredTags:  matchedDesired,
	}

	if len(product.Contraindications) == 0 || !intersects(product.Contraindications, userContraindications) {
		score.ContextBonus = contextBonusValue
	}

	total := score.RequiredTagScore + score.DesiredTagScore + score.ContextBonus
	if len(matchedRequired) >= 2 {
		total += multiRequiredBonus
	}
	if len(matchedDesired) >= 2 {
		total += multiDesiredBonus
	}
	if product.Metadata.HumidityResistant && containsAny(requiredTags, frizzTags) {
		total += humidityBonus
	}
	score.TotalScore = total

	// maxPossible uses a flat +3.0 in place of the true context-bonus
	// ceiling. The percentage is user-facing; keep the formula as shipped.
	if len(requiredTags) == 0 && len(desiredTags) == 0 {
		score.NormalizedScore = 0
		return score
	}
	maxPossible := requiredTagWeight*float64(len(requiredTags)) + desiredTagWeight*float64(len(desiredTags)) + normalizationBuffer
	score.NormalizedScore = total / maxPossible
	if score.NormalizedScore > 1 {
		score.NormalizedScore = 1
	}
	return score
}

func containsAny(set TagSet, tags []string) bool {
	for _, t := range tags {
		if set.Has(t) {
			return true
		}
	}
	return false
}

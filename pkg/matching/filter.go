package matching

import "beauty-advisor-be/pkg/catalog"

// ApplyHardFilters removes products that are unsafe or off-problem:
//   - any intersection between the product's contraindications and the
//     user's excludes the product;
//   - when requiredTags is non-empty, a product must carry at least one of
//     them (OR semantics). An empty requiredTags set makes that condition a
//     no-op: no primary problem stated means nothing is mandatory.
//
// Input order is preserved.
func ApplyHardFilters(products []catalog.Product, contraindications, requiredTags TagSet) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if intersects(p.Contraindications, contraindications) {
			continue
		}
		if len(requiredTags) > 0 && !intersects(p.Tags, requiredTags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func intersects(tags []string, set TagSet) bool {
	for _, t := range tags {
		if set.Has(t) {
			return true
		}
	}
	return false
}

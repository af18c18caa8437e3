package catalog

import (
	"context"
	"testing"
)

// Loads the shipped catalog and checks basic data integrity.
func TestShippedCatalog(t *testing.T) {
	store, err := NewStore(context.Background(), NewJSONProvider("../../data/catalog.json"))
	if err != nil {
		t.Fatalf("load shipped catalog: %v", err)
	}

	if store.Len() == 0 {
		t.Fatal("shipped catalog is empty")
	}

	seen := map[string]bool{}
	for _, p := range store.All() {
		if p.Id == "" || p.Category == "" {
			t.Errorf("product %+v missing id or category", p)
		}
		if seen[p.Id] {
			t.Errorf("duplicate product id %s", p.Id)
		}
		seen[p.Id] = true

		if p.Price <= 0 || p.Currency == "" {
			t.Errorf("product %s: missing price or currency", p.Id)
		}
		if p.Name.Resolve("en", "en") == "" {
			t.Errorf("product %s: missing en name", p.Id)
		}
		if p.Name.Resolve("id", "en") == "" {
			t.Errorf("product %s: id name does not resolve", p.Id)
		}
	}

	for _, category := range []string{"hair", "body"} {
		if len(store.ByCategory(category)) == 0 {
			t.Errorf("no products in category %s", category)
		}
	}
}

package catalog

import (
	"context"
	"fmt"
	"sort"
)

// Provider supplies the full product list at startup. Implementations:
// JSONProvider (default) and the GORM-backed repository in internal/repository.
type Provider interface {
	LoadProducts(ctx context.Context) ([]Product, error)
}

// Store is the read-only in-memory catalog. Safe for concurrent reads.
type Store struct {
	products   []Product
	byCategory map[string][]Product
	byId       map[string]*Product
}

// NewStore loads the catalog once through the provider and indexes it.
func NewStore(ctx context.Context, provider Provider) (*Store, error) {
	products, err := provider.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	s := &Store{
		products:   products,
		byCategory: make(map[string][]Product),
		byId:       make(map[string]*Product),
	}
	for i := range s.products {
		p := &s.products[i]
		s.byCategory[p.Category] = append(s.byCategory[p.Category], *p)
		s.byId[p.Id] = p
	}
	return s, nil
}

// ByCategory returns the catalog subset for one category.
// Callers must not mutate the returned slice.
func (s *Store) ByCategory(category string) []Product {
	return s.byCategory[category]
}

// Get returns a product by id.
func (s *Store) Get(id string) (*Product, bool) {
	p, ok := s.byId[id]
	return p, ok
}

// All returns every product in the catalog.
func (s *Store) All() []Product {
	return s.products
}

// Categories lists the distinct categories present, sorted.
func (s *Store) Categories() []string {
	out := make([]string, 0, len(s.byCategory))
	for c := range s.byCategory {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Len is the total product count, used by the admin stats endpoint.
func (s *Store) Len() int {
	return len(s.products)
}

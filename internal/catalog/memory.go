package catalog

import "context"

// MemoryStore serves the built-in catalog when no database is configured.
type MemoryStore struct {
	products []Product
}

func NewMemoryStore(products []Product) *MemoryStore {
	return &MemoryStore{products: products}
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]Product, error) {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetBySlug(_ context.Context, slug string) (Product, error) {
	for _, p := range s.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

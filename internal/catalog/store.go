package catalog

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("product not found")

type Store interface {
	List(ctx context.Context, f Filter) ([]Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
}

func normCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "all" {
		return ""
	}
	return c
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

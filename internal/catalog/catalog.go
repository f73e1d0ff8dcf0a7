// Package catalog serves the read-only product catalog.
package catalog

import (
	"strings"

	"github.com/gosimple/slug"

	"github.com/01moynul/aguadelivery-golang/internal/models"
)

// Filter narrows List. Empty fields match everything.
type Filter struct {
	Category string
	Search   string
}

// Catalog is an immutable, ordered set of products.
type Catalog struct {
	products []models.Product
	byID     map[int64]int
}

// New builds a catalog, deriving each product's slug from its name.
func New(products []models.Product) *Catalog {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[int64]int, len(products)),
	}
	for i, p := range products {
		if p.Slug == "" {
			p.Slug = slug.Make(p.Name)
		}
		c.products[i] = p
		c.byID[p.ID] = i
	}
	return c
}

// List returns the products in the given category whose name contains the
// search text, ignoring case and accents.
func (c *Catalog) List(f Filter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	searchSlug := slug.Make(search)

	out := []models.Product{}
	for _, p := range c.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" && !matches(p, search, searchSlug) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matches(p models.Product, search, searchSlug string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	return searchSlug != "" && strings.Contains(p.Slug, searchSlug)
}

// Get returns the product with the given id.
func (c *Catalog) Get(id int64) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

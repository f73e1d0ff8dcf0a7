package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/aguadelivery-golang/internal/models"
)

func ids(products []models.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestList(t *testing.T) {
	c := New(DefaultProducts)

	tests := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"no filter", Filter{}, []int64{1, 2, 3, 4, 5}},
		{"category", Filter{Category: "mineral"}, []int64{1, 2, 4}},
		{"unknown category", Filter{Category: "suco"}, []int64{}},
		{"search is case-insensitive", Filter{Search: "CRYSTAL"}, []int64{1}},
		{"search without accents", Filter{Search: "sao lourenco"}, []int64{2}},
		{"search with accents", Filter{Search: "Indaiá"}, []int64{4}},
		{"search substring", Filter{Search: "1.5"}, []int64{2}},
		{"category and search", Filter{Category: "mineral", Search: "bonafont"}, []int64{}},
		{"no match", Filter{Search: "refrigerante"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(c.List(tt.filter)))
		})
	}
}

func TestGet(t *testing.T) {
	c := New(DefaultProducts)

	p, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Água Crystal 500ml", p.Name)
	assert.Equal(t, 2.5, p.Price)
	assert.Equal(t, "agua-crystal-500ml", p.Slug)

	_, ok = c.Get(99)
	assert.False(t, ok)
}

func TestNewDoesNotAliasInput(t *testing.T) {
	seed := []models.Product{{ID: 7, Name: "Água Teste", Category: "mineral"}}
	c := New(seed)
	seed[0].Name = "changed"

	p, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, "Água Teste", p.Name)
	assert.Empty(t, seed[0].Slug)
}

func TestCategories(t *testing.T) {
	c := New(DefaultProducts)
	assert.Equal(t, []string{"mineral", "purificada", "com_gas"}, c.Categories())
}

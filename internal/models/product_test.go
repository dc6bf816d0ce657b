package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalInStockDefaultsTrue(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"x","price":10}`), &p))
	assert.True(t, p.InStock)

	var q Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"name":"y","price":10,"inStock":false}`), &q))
	assert.False(t, q.InStock)
}

func TestNormalizeFiltersBlankImages(t *testing.T) {
	p := Product{Images: []string{"", "/a.jpg", "  ", "/b.jpg"}}
	p.Normalize()
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, p.Images)
}

func TestNormalizeFallsBackToPlaceholder(t *testing.T) {
	p := Product{Images: []string{"", "  "}}
	p.Normalize()
	assert.Equal(t, []string{PlaceholderImage}, p.Images)
}

func TestNormalizeCapsImages(t *testing.T) {
	p := Product{Images: []string{"/1", "/2", "/3", "/4", "/5", "/6", "/7"}}
	p.Normalize()
	assert.Len(t, p.Images, MaxProductImages)
}

func TestNormalizeBackfillsCategories(t *testing.T) {
	legacy := Product{Category: "Mangas"}
	legacy.Normalize()
	assert.Equal(t, []string{"Mangas"}, legacy.Categories)

	multi := Product{Categories: []string{"Mangas", "Revistas"}}
	multi.Normalize()
	// first category is primary
	assert.Equal(t, "Mangas", multi.Category)
}

func TestInCategory(t *testing.T) {
	p := Product{Categories: []string{"Mangas", "Revistas"}}
	assert.True(t, p.InCategory("Revistas"))
	assert.False(t, p.InCategory("Figuras"))

	legacy := Product{Category: "Mangas"}
	assert.True(t, legacy.InCategory("Mangas"))
}

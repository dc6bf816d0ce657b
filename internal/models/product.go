package models

import (
	"encoding/json"
	"strings"
)

// PlaceholderImage is used when a product record carries no usable image.
const PlaceholderImage = "/images/placeholder.png"

// MaxProductImages caps how many images a product keeps on save.
const MaxProductImages = 5

// Product is the canonical product record. Legacy records (singular
// "category", missing "inStock") are migrated to this shape by Normalize at
// the storage boundary; internal logic only ever sees the normalized form.
type Product struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Details            string   `json:"details,omitempty"`
	Price              float64  `json:"price"`
	OriginalPrice      float64  `json:"originalPrice,omitempty"`
	Images             []string `json:"images,omitempty"`
	Category           string   `json:"category,omitempty"`
	Categories         []string `json:"categories,omitempty"`
	Subcategory        string   `json:"subcategory,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	IsNew              bool     `json:"isNew,omitempty"`
	InStock            bool     `json:"inStock"`
	IsOnOffer          bool     `json:"isOnOffer,omitempty"`
	DiscountPercentage float64  `json:"discountPercentage,omitempty"`
}

// UnmarshalJSON defaults inStock to true when the field is absent, which is
// how older persisted records encode "available".
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		InStock *bool `json:"inStock"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.InStock = aux.InStock == nil || *aux.InStock
	return nil
}

// Normalize migrates a record to the canonical shape: blank image entries
// are dropped (placeholder when none survive), the image list is capped,
// and category/categories are backfilled from each other so that Categories
// is always authoritative and Category keeps the primary-category display.
func (p *Product) Normalize() {
	images := p.Images[:0]
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}
	if len(images) > MaxProductImages {
		images = images[:MaxProductImages]
	}
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}
	p.Images = images

	if len(p.Categories) == 0 && p.Category != "" {
		p.Categories = []string{p.Category}
	}
	if p.Category == "" && len(p.Categories) > 0 {
		p.Category = p.Categories[0]
	}
}

// PrimaryImage returns the canonical image for snapshots and single-image
// views.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return PlaceholderImage
}

// InCategory reports whether the product belongs to the named category,
// checking the categories set first and the legacy singular field for
// records that predate it.
func (p *Product) InCategory(name string) bool {
	for _, c := range p.Categories {
		if c == name {
			return true
		}
	}
	return len(p.Categories) == 0 && p.Category == name
}

// Package offers computes a product's effective displayed price given the
// current set of promotional offers. Resolution is a view-time transform:
// it never mutates stored data.
package offers

import (
	"math"
	"time"

	"github.com/arkya-store/storefront-service/internal/models"
)

// Resolve returns the product with the applicable discount applied, if any.
//
// Precedence:
//  1. out-of-stock products never show an offer,
//  2. a manual per-product offer set by the admin always wins,
//  3. the first active global offer,
//  4. the first active offer scoped to one of the product's categories,
//     walking the product's own category list in order.
//
// No stacking: at most one offer applies.
func Resolve(p models.Product, offers []models.Offer) models.Product {
	return ResolveAt(p, offers, time.Now().UTC())
}

// ResolveAt is Resolve with an explicit evaluation time for offer validity
// windows.
func ResolveAt(p models.Product, offers []models.Offer, now time.Time) models.Product {
	if !p.InStock {
		p.IsOnOffer = false
		return p
	}
	if p.IsOnOffer {
		// manual override, leave untouched
		return p
	}

	for _, off := range offers {
		if off.IsGlobal && off.IsActive && off.InWindow(now) {
			if applied, ok := apply(p, off); ok {
				return applied
			}
		}
	}

	cats := p.Categories
	if len(cats) == 0 && p.Category != "" {
		cats = []string{p.Category}
	}
	for _, cat := range cats {
		for _, off := range offers {
			if off.IsGlobal || !off.IsActive || !off.InWindow(now) {
				continue
			}
			if !off.AppliesToCategory(cat) {
				continue
			}
			if applied, ok := apply(p, off); ok {
				return applied
			}
		}
	}

	return p
}

// ResolveAll resolves every product against the same offer set.
func ResolveAll(products []models.Product, offers []models.Offer) []models.Product {
	now := time.Now().UTC()
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = ResolveAt(p, offers, now)
	}
	return out
}

// apply discounts the product's price, capturing the pre-discount price in
// OriginalPrice. Prices round to whole units. A misconfigured discount
// (percentage outside (0,100), non-positive amount) is treated as a no-op
// so the engine never divides by zero or produces a negative price.
func apply(p models.Product, off models.Offer) (models.Product, bool) {
	original := p.Price

	var discounted, pct float64
	switch off.DiscountType {
	case models.DiscountTypeAmount:
		if off.DiscountAmount <= 0 {
			return p, false
		}
		discounted = math.Round(original - off.DiscountAmount)
		if discounted < 0 {
			discounted = 0
		}
		if original > 0 {
			pct = math.Round((original - discounted) / original * 100)
		}
	default:
		pct = off.DiscountPercentage
		if pct <= 0 || pct >= 100 {
			return p, false
		}
		discounted = math.Round(original * (1 - pct/100))
	}

	p.IsOnOffer = true
	p.DiscountPercentage = pct
	p.OriginalPrice = original
	p.Price = discounted
	return p, true
}

package models

import "time"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeAmount     = "amount"

	// Promotional offers carry a unique code; discount offers apply
	// automatically with no code.
	OfferTypePromotional = "promotional"
	OfferTypeDiscount    = "discount"
)

// Offer is a discount rule, either store-wide (global) or scoped to one or
// more categories.
type Offer struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description,omitempty"`
	DiscountType         string   `json:"discountType"`
	DiscountPercentage   float64  `json:"discountPercentage,omitempty"`
	DiscountAmount       float64  `json:"discountAmount,omitempty"`
	OfferType            string   `json:"offerType"`
	Code                 string   `json:"code,omitempty"`
	IsGlobal             bool     `json:"isGlobal"`
	ApplicableCategories []string `json:"applicableCategories,omitempty"`
	IsActive             bool     `json:"isActive"`
	StartDate            string   `json:"startDate,omitempty"`
	EndDate              string   `json:"endDate,omitempty"`
	MinPurchaseAmount    float64  `json:"minPurchaseAmount,omitempty"`

	// Usage counters are stored and round-tripped but never enforced:
	// checkout is a message hand-off, so no purchase event exists to
	// consume a use.
	MaxUses     int `json:"maxUses,omitempty"`
	CurrentUses int `json:"currentUses,omitempty"`
}

// InWindow reports whether now falls inside the offer's validity window.
// Empty or unparseable bounds are treated as unbounded.
func (o *Offer) InWindow(now time.Time) bool {
	if t, err := time.Parse(time.RFC3339, o.StartDate); err == nil && now.Before(t) {
		return false
	}
	if t, err := time.Parse(time.RFC3339, o.EndDate); err == nil && now.After(t) {
		return false
	}
	return true
}

// AppliesToCategory reports whether the offer is scoped to the named
// category. Global offers are matched separately and ignore scoping.
func (o *Offer) AppliesToCategory(name string) bool {
	for _, c := range o.ApplicableCategories {
		if c == name {
			return true
		}
	}
	return false
}

package models

// CartLine is one product/quantity pair in the cart. It snapshots the
// product's display fields at add time; the price is not re-resolved later,
// so the cart keeps the price-at-add-time even if offers change afterward.
type CartLine struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

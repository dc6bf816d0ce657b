package models

type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is one entry of the store taxonomy. The taxonomy is seeded
// statically and admin-extensible.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

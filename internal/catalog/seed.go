package catalog

import "github.com/arkya-store/storefront-service/internal/models"

// Seed data mirrors the shop's launch catalog. It is only used until the
// first admin edit is persisted.

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "artbooks", Name: "Artbooks", Subcategories: []models.Subcategory{}},
		{ID: "figuras", Name: "Figuras", Subcategories: []models.Subcategory{}},
		{ID: "mangas", Name: "Mangas", Subcategories: []models.Subcategory{
			{ID: "ediciones-especiales", Name: "Ediciones Especiales"},
		}},
		{ID: "revistas", Name: "Revistas", Subcategories: []models.Subcategory{
			{ID: "jump", Name: "Shonen Jump"},
		}},
		{ID: "doujinshis", Name: "Doujinshis", Subcategories: []models.Subcategory{}},
		{ID: "guide-books", Name: "Guide Books", Subcategories: []models.Subcategory{}},
		{ID: "character-books", Name: "Character Books", Subcategories: []models.Subcategory{}},
		{ID: "novela-ligera", Name: "Novela Ligera", Subcategories: []models.Subcategory{
			{ID: "ediciones-especiales-ln", Name: "Ediciones Especiales"},
		}},
		{ID: "peluches", Name: "Peluches", Subcategories: []models.Subcategory{}},
	}
}

func seedOffers() []models.Offer {
	return []models.Offer{
		{
			ID:                 "global-discount-10",
			Title:              "Descuento General 10%",
			Description:        "10% de descuento en todos los productos de la tienda",
			DiscountType:       models.DiscountTypePercentage,
			DiscountPercentage: 10,
			OfferType:          models.OfferTypeDiscount,
			IsGlobal:           true,
			IsActive:           true,
		},
	}
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Chainsaw Man Vol. 1",
			Description: "Manga en japonés, edición original",
			Price:       12000,
			Images:      []string{"/images/products/csm-1.jpg"},
			Categories:  []string{"Mangas"},
			InStock:     true,
		},
		{
			ID:          2,
			Name:        "Jujutsu Kaisen Vol. 0",
			Description: "Manga en japonés, edición original",
			Price:       11000,
			Images:      []string{"/images/products/jjk-0.jpg"},
			Categories:  []string{"Mangas"},
			IsNew:       true,
			InStock:     true,
		},
		{
			ID:          3,
			Name:        "Shonen Jump 2024 #32",
			Description: "Revista semanal con capítulos de One Piece y más",
			Price:       8000,
			Images:      []string{"/images/products/jump-32.jpg"},
			Categories:  []string{"Revistas"},
			Subcategory: "Shonen Jump",
			InStock:     true,
		},
		{
			ID:          4,
			Name:        "Figura Nendoroid Makima",
			Description: "Figura articulada con accesorios intercambiables",
			Price:       45000,
			Images:      []string{"/images/products/nendo-makima.jpg"},
			Categories:  []string{"Figuras"},
			InStock:     true,
		},
		{
			ID:          5,
			Name:        "Artbook Yoshitaka Amano",
			Description: "Recopilación de ilustraciones, tapa dura",
			Price:       38000,
			Images:      []string{"/images/products/amano.jpg"},
			Categories:  []string{"Artbooks"},
			InStock:     false,
		},
		{
			ID:          6,
			Name:        "Frieren Novela Ligera Vol. 1",
			Description: "Novela ligera en japonés",
			Price:       14000,
			Images:      []string{"/images/products/frieren-ln.jpg"},
			Categories:  []string{"Novela Ligera"},
			Subcategory: "Ediciones Especiales",
			IsNew:       true,
			InStock:     true,
		},
		{
			ID:          7,
			Name:        "Peluche Totoro Mediano",
			Description: "Peluche oficial Studio Ghibli, 30cm",
			Price:       25000,
			Images:      []string{"/images/products/totoro.jpg"},
			Categories:  []string{"Peluches"},
			InStock:     true,
		},
		{
			ID:          8,
			Name:        "One Piece Vol. 100 Edición Especial",
			Description: "Manga en japonés con sobrecubierta conmemorativa",
			Price:       15000,
			Images:      []string{"/images/products/op-100.jpg"},
			Categories:  []string{"Mangas"},
			Subcategory: "Ediciones Especiales",
			InStock:     true,
		},
	}
}

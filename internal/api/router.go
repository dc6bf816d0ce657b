package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/api/handlers"
	"github.com/arkya-store/storefront-service/internal/cart"
	"github.com/arkya-store/storefront-service/internal/catalog"
)

// NewRouter builds the HTTP router for the storefront-service
func NewRouter(store *catalog.Store, ledger *cart.Ledger, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	catalogHandler := handlers.NewCatalogHandler(store, log)
	cartHandler := handlers.NewCartHandler(store, ledger, log)
	adminHandler := handlers.NewAdminHandler(store, log)

	// Storefront endpoints
	r.Route("/products", func(r chi.Router) {
		r.Get("/", catalogHandler.ListProducts)
		r.Get("/{id}", catalogHandler.GetProduct)
		r.Get("/{id}/inquiry-message", catalogHandler.InquiryMessage)
	})
	r.Get("/offers", catalogHandler.ListOffers)
	r.Get("/categories", catalogHandler.ListCategories)

	// Cart endpoints
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)
		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{id}", cartHandler.UpdateItem)
		r.Delete("/items/{id}", cartHandler.RemoveItem)
		r.Get("/checkout-message", cartHandler.CheckoutMessage)
	})

	// Admin endpoints
	r.Route("/admin", func(r chi.Router) {
		r.Post("/products", adminHandler.CreateProduct)
		r.Put("/products/{id}", adminHandler.UpdateProduct)
		r.Delete("/products/{id}", adminHandler.DeleteProduct)
		r.Post("/offers", adminHandler.CreateOffer)
		r.Put("/offers/{id}", adminHandler.UpdateOffer)
		r.Delete("/offers/{id}", adminHandler.DeleteOffer)
		r.Post("/categories", adminHandler.CreateCategory)
		r.Post("/categories/{id}/subcategories", adminHandler.CreateSubcategory)
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

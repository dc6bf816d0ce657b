package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/catalog"
	"github.com/arkya-store/storefront-service/internal/models"
	"github.com/arkya-store/storefront-service/internal/storage"
)

// AdminHandler is the admin-forms boundary. Field-level validation
// (required strings, numeric ranges) lives here; the engines trust stored
// records are well-formed.
type AdminHandler struct {
	store *catalog.Store
	log   *zap.Logger
}

func NewAdminHandler(store *catalog.Store, log *zap.Logger) *AdminHandler {
	return &AdminHandler{store: store, log: log}
}

func validateProduct(p *models.Product) string {
	if p.Name == "" {
		return "name required"
	}
	if p.Price <= 0 {
		return "price must be positive"
	}
	return ""
}

func validateOffer(o *models.Offer) string {
	if o.Title == "" {
		return "title required"
	}
	switch o.DiscountType {
	case models.DiscountTypeAmount:
		if o.DiscountAmount <= 0 {
			return "discount_amount must be positive"
		}
	case models.DiscountTypePercentage, "":
		if o.DiscountPercentage <= 0 || o.DiscountPercentage >= 100 {
			return "discount_percentage must be between 1 and 99"
		}
	default:
		return "unknown discount_type"
	}
	return ""
}

// warningOf maps a degraded persist to a response warning; any other error
// is an internal failure.
func warningOf(err error) (string, bool) {
	if err == nil {
		return "", true
	}
	if errors.Is(err, storage.ErrDegraded) {
		return "saved in memory only; changes may be lost on restart", true
	}
	return "", false
}

// CreateProduct handles POST /admin/products.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if msg := validateProduct(&p); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.CreateProduct(r.Context(), p)
	if err != nil && errors.Is(err, catalog.ErrExists) {
		writeError(w, http.StatusConflict, "product_exists")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusCreated, withWarning(map[string]interface{}{
		"product": created,
	}, warning))
}

// UpdateProduct handles PUT /admin/products/{id}.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	p.ID = id
	if msg := validateProduct(&p); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	err = h.store.UpdateProduct(r.Context(), p)
	if err != nil && errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, withWarning(map[string]interface{}{
		"product": p,
	}, warning))
}

// DeleteProduct handles DELETE /admin/products/{id}.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	err = h.store.DeleteProduct(r.Context(), id)
	if err != nil && errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, withWarning(map[string]interface{}{
		"message": "product_deleted",
	}, warning))
}

// CreateOffer handles POST /admin/offers.
func (h *AdminHandler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var o models.Offer
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if msg := validateOffer(&o); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.CreateOffer(r.Context(), o)
	if err != nil && errors.Is(err, catalog.ErrExists) {
		writeError(w, http.StatusConflict, "offer_exists")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusCreated, withWarning(map[string]interface{}{
		"offer": created,
	}, warning))
}

// UpdateOffer handles PUT /admin/offers/{id}.
func (h *AdminHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	var o models.Offer
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	o.ID = chi.URLParam(r, "id")
	if msg := validateOffer(&o); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	err := h.store.UpdateOffer(r.Context(), o)
	if err != nil && errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, withWarning(map[string]interface{}{
		"offer": o,
	}, warning))
}

// DeleteOffer handles DELETE /admin/offers/{id}.
func (h *AdminHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteOffer(r.Context(), chi.URLParam(r, "id"))
	if err != nil && errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, withWarning(map[string]interface{}{
		"message": "offer_deleted",
	}, warning))
}

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if c.ID == "" || c.Name == "" {
		writeError(w, http.StatusBadRequest, "id and name required")
		return
	}

	err := h.store.AddCategory(r.Context(), c)
	if err != nil && errors.Is(err, catalog.ErrExists) {
		writeError(w, http.StatusConflict, "category_exists")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusCreated, withWarning(map[string]interface{}{
		"category": c,
	}, warning))
}

// CreateSubcategory handles POST /admin/categories/{id}/subcategories.
func (h *AdminHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var sub models.Subcategory
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if sub.ID == "" || sub.Name == "" {
		writeError(w, http.StatusBadRequest, "id and name required")
		return
	}

	err := h.store.AddSubcategory(r.Context(), chi.URLParam(r, "id"), sub)
	switch {
	case err != nil && errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case err != nil && errors.Is(err, catalog.ErrExists):
		writeError(w, http.StatusConflict, "subcategory_exists")
		return
	}
	warning, ok := warningOf(err)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusCreated, withWarning(map[string]interface{}{
		"subcategory": sub,
	}, warning))
}

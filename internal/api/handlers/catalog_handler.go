package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/catalog"
	"github.com/arkya-store/storefront-service/internal/checkout"
	"github.com/arkya-store/storefront-service/internal/offers"
	"github.com/arkya-store/storefront-service/internal/query"
)

// CatalogHandler serves the storefront browse surface: product pages,
// single product lookups and the active offer list.
type CatalogHandler struct {
	store *catalog.Store
	log   *zap.Logger
}

func NewCatalogHandler(store *catalog.Store, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: store, log: log}
}

// ListProducts handles GET /products.
// Query params: search, category, subcategory, sort, page, page_size.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := query.Params{
		Search:        q.Get("search"),
		CategoryID:    q.Get("category"),
		SubcategoryID: q.Get("subcategory"),
		Sort:          q.Get("sort"),
		Page:          1,
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		params.Page = page
	}
	if v := q.Get("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 {
			writeError(w, http.StatusBadRequest, "invalid page_size")
			return
		}
		params.PageSize = size
	}

	priced := offers.ResolveAll(h.store.Products(), h.store.Offers())
	res, err := query.Run(priced, h.store.Categories(), params)
	if err != nil {
		if errors.Is(err, query.ErrPageOutOfRange) {
			writeError(w, http.StatusBadRequest, "page_out_of_range")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// GetProduct handles GET /products/{id}. A missing product is a 404
// not-found result, distinct from transport errors.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, ok := h.store.ProductByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	writeJSON(w, http.StatusOK, offers.Resolve(p, h.store.Offers()))
}

// InquiryMessage handles GET /products/{id}/inquiry-message, returning the
// text the product page copies for direct purchase intent.
func (h *CatalogHandler) InquiryMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	p, ok := h.store.ProductByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": checkout.InquiryMessage(p.Name),
	})
}

// ListOffers handles GET /offers.
func (h *CatalogHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ActiveOffers())
}

// ListCategories handles GET /categories.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Categories())
}

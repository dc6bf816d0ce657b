package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/cart"
	"github.com/arkya-store/storefront-service/internal/catalog"
	"github.com/arkya-store/storefront-service/internal/checkout"
	"github.com/arkya-store/storefront-service/internal/models"
	"github.com/arkya-store/storefront-service/internal/offers"
	"github.com/arkya-store/storefront-service/internal/storage"
)

type CartHandler struct {
	store  *catalog.Store
	ledger *cart.Ledger
	log    *zap.Logger
}

func NewCartHandler(store *catalog.Store, ledger *cart.Ledger, log *zap.Logger) *CartHandler {
	return &CartHandler{store: store, ledger: ledger, log: log}
}

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items      []models.CartLine `json:"items"`
	ItemsCount int               `json:"items_count"`
	Total      float64           `json:"total"`
	Warning    string            `json:"warning,omitempty"`
}

func (h *CartHandler) respond(w http.ResponseWriter, code int, err error) {
	resp := cartResponse{
		Items:      h.ledger.Lines(),
		ItemsCount: h.ledger.ItemsCount(),
		Total:      h.ledger.Total(),
	}
	// a degraded persist is a warning for the user, not a failure
	if err != nil && errors.Is(err, storage.ErrDegraded) {
		resp.Warning = "cart saved in memory only; changes may be lost on restart"
	}
	writeJSON(w, code, resp)
}

// GetCart handles GET /cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, nil)
}

// AddItem handles POST /cart/items. The line snapshots the product as
// currently displayed, offers applied.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	p, ok := h.store.ProductByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	priced := offers.Resolve(p, h.store.Offers())
	err := h.ledger.Add(r.Context(), priced, req.Quantity)
	if err != nil && errors.Is(err, cart.ErrOutOfStock) {
		writeError(w, http.StatusConflict, "out_of_stock")
		return
	}

	h.respond(w, http.StatusOK, err)
}

// UpdateItem handles PUT /cart/items/{id}. Quantity zero removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	h.respond(w, http.StatusOK, h.ledger.UpdateQuantity(r.Context(), id, req.Quantity))
}

// RemoveItem handles DELETE /cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.respond(w, http.StatusOK, h.ledger.Remove(r.Context(), id))
}

// ClearCart handles DELETE /cart.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, h.ledger.Clear(r.Context()))
}

// CheckoutMessage handles GET /cart/checkout-message. The presentation
// layer copies the message to the clipboard and opens the chat link.
func (h *CartHandler) CheckoutMessage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": checkout.OrderMessage(h.ledger.Lines(), h.ledger.Total()),
	})
}

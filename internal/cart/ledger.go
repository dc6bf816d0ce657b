// Package cart maintains the product/quantity lines for the active session
// and derives totals. The full line list is serialized to the store after
// every mutation and rehydrated on startup.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/models"
	"github.com/arkya-store/storefront-service/internal/storage"
)

const storageKey = "cart"

// ErrOutOfStock is returned when adding a product that is not in stock.
var ErrOutOfStock = errors.New("cart: product out of stock")

type Ledger struct {
	mu    sync.Mutex
	kv    storage.KV
	log   *zap.Logger
	lines []models.CartLine
}

// NewLedger rehydrates the cart from the store. A missing or unparseable
// stored value is treated as an empty cart, never as a fatal error.
func NewLedger(ctx context.Context, kv storage.KV, log *zap.Logger) *Ledger {
	l := &Ledger{kv: kv, log: log}

	raw, err := kv.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn("cart load failed, starting empty", zap.Error(err))
		}
		return l
	}
	if err := json.Unmarshal(raw, &l.lines); err != nil {
		log.Warn("stored cart is corrupt, starting empty", zap.Error(err))
		l.lines = nil
	}
	return l
}

// Add appends a line snapshotting the product's display fields, or
// increments the quantity when a line for the product already exists. There
// is never more than one line per product id.
func (l *Ledger) Add(ctx context.Context, p models.Product, quantity int) error {
	if !p.InStock {
		return ErrOutOfStock
	}
	if quantity < 1 {
		quantity = 1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	found := false
	for i := range l.lines {
		if l.lines[i].ProductID == p.ID {
			l.lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		l.lines = append(l.lines, models.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.PrimaryImage(),
			Price:     p.Price,
			Quantity:  quantity,
		})
	}

	return l.persist(ctx)
}

// Remove deletes the line for the product id. Removing an absent id is not
// an error.
func (l *Ledger) Remove(ctx context.Context, productID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return l.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity sets the line's quantity to exactly the given value. A
// quantity of zero or less removes the line.
func (l *Ledger) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return l.Remove(ctx, productID)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.lines {
		if l.lines[i].ProductID == productID {
			l.lines[i].Quantity = quantity
			return l.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = nil
	return l.persist(ctx)
}

// Lines returns a copy of the current cart lines.
func (l *Ledger) Lines() []models.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.CartLine, len(l.lines))
	copy(out, l.lines)
	return out
}

// ItemsCount is the sum of all line quantities, not the line count.
func (l *Ledger) ItemsCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	count := 0
	for _, line := range l.lines {
		count += line.Quantity
	}
	return count
}

// Total is the sum over lines of price times quantity.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0.0
	for _, line := range l.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// persist writes the line list to the store. A failed write is retried with
// the image snapshots dropped; if that also fails the mutation stays in
// memory and the error surfaces as a warning. Caller holds the lock.
func (l *Ledger) persist(ctx context.Context) error {
	raw, err := json.Marshal(l.lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := l.kv.Set(ctx, storageKey, raw); err == nil {
		return nil
	}

	trimmed := make([]models.CartLine, len(l.lines))
	copy(trimmed, l.lines)
	for i := range trimmed {
		trimmed[i].Image = ""
	}
	raw, merr := json.Marshal(trimmed)
	if merr == nil {
		if serr := l.kv.Set(ctx, storageKey, raw); serr == nil {
			l.log.Warn("cart persisted without image snapshots")
			return nil
		}
	}

	l.log.Error("cart persist failed, cart kept in memory only")
	return fmt.Errorf("%w: cart not persisted", storage.ErrDegraded)
}

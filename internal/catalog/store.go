// Package catalog holds the product, offer and category taxonomy records
// behind an explicit store object. Every read goes through the store; admin
// mutations are persisted as whole JSON lists under their own keys, last
// writer wins.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/models"
	"github.com/arkya-store/storefront-service/internal/storage"
)

const (
	productsKey   = "admin_products"
	offersKey     = "admin_offers"
	categoriesKey = "admin_categories"
)

var (
	ErrNotFound = errors.New("catalog: not found")
	ErrExists   = errors.New("catalog: already exists")
)

type Store struct {
	mu         sync.RWMutex
	kv         storage.KV
	log        *zap.Logger
	products   []models.Product
	offers     []models.Offer
	categories []models.Category
	lastID     int64
}

// NewStore loads the persisted catalog, falling back to the compiled-in
// seed data when nothing is stored yet. Corrupt stored JSON is logged and
// replaced by the seeds; the store never fails to come up.
func NewStore(ctx context.Context, kv storage.KV, log *zap.Logger) *Store {
	s := &Store{kv: kv, log: log}

	s.products = loadList(ctx, kv, log, productsKey, seedProducts())
	s.offers = loadList(ctx, kv, log, offersKey, seedOffers())
	s.categories = loadList(ctx, kv, log, categoriesKey, seedCategories())

	for i := range s.products {
		s.products[i].Normalize()
		if s.products[i].ID > s.lastID {
			s.lastID = s.products[i].ID
		}
	}
	return s
}

func loadList[T any](ctx context.Context, kv storage.KV, log *zap.Logger, key string, seed []T) []T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn("catalog load failed, using seed data", zap.String("key", key), zap.Error(err))
		}
		return seed
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn("stored catalog data is corrupt, using seed data", zap.String("key", key), zap.Error(err))
		return seed
	}
	return out
}

// Products returns a copy of the raw product records. Offers are not
// applied here; resolution happens at view time.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks up a single product. The ok result distinguishes
// "not found" from a zero-valued record.
func (s *Store) ProductByID(id int64) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func (s *Store) Offers() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

// ActiveOffers returns the offers currently shown on the storefront.
func (s *Store) ActiveOffers() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := time.Now().UTC()
	out := make([]models.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		if o.IsActive && o.InWindow(now) {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// CreateProduct normalizes and stores a new product. Products submitted
// without an id get a time-based one, kept strictly increasing so that
// newest-added ordering holds even for same-millisecond submissions.
func (s *Store) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	p.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		p.ID = s.nextProductID()
	} else {
		for _, existing := range s.products {
			if existing.ID == p.ID {
				return models.Product{}, fmt.Errorf("%w: product %d", ErrExists, p.ID)
			}
		}
		if p.ID > s.lastID {
			s.lastID = p.ID
		}
	}

	s.products = append(s.products, p)
	return p, s.persistProducts(ctx)
}

func (s *Store) nextProductID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) error {
	p.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return s.persistProducts(ctx)
		}
	}
	return fmt.Errorf("%w: product %d", ErrNotFound, p.ID)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.persistProducts(ctx)
		}
	}
	return fmt.Errorf("%w: product %d", ErrNotFound, id)
}

// CreateOffer stores a new offer. Promotional offers that arrive without a
// code get a generated one; offers without an id get a uuid-derived id.
func (s *Store) CreateOffer(ctx context.Context, o models.Offer) (models.Offer, error) {
	if o.ID == "" {
		o.ID = "offer-" + shortUUID()
	}
	if o.OfferType == models.OfferTypePromotional && o.Code == "" {
		o.Code = strings.ToUpper(shortUUID())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.offers {
		if existing.ID == o.ID {
			return models.Offer{}, fmt.Errorf("%w: offer %s", ErrExists, o.ID)
		}
	}

	s.offers = append(s.offers, o)
	return o, s.persistOffers(ctx)
}

func (s *Store) UpdateOffer(ctx context.Context, o models.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.offers {
		if s.offers[i].ID == o.ID {
			s.offers[i] = o
			return s.persistOffers(ctx)
		}
	}
	return fmt.Errorf("%w: offer %s", ErrNotFound, o.ID)
}

func (s *Store) DeleteOffer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.offers {
		if s.offers[i].ID == id {
			s.offers = append(s.offers[:i], s.offers[i+1:]...)
			return s.persistOffers(ctx)
		}
	}
	return fmt.Errorf("%w: offer %s", ErrNotFound, id)
}

// AddCategory extends the taxonomy with a new top-level category.
func (s *Store) AddCategory(ctx context.Context, c models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.categories {
		if existing.ID == c.ID {
			return fmt.Errorf("%w: category %s", ErrExists, c.ID)
		}
	}
	if c.Subcategories == nil {
		c.Subcategories = []models.Subcategory{}
	}

	s.categories = append(s.categories, c)
	return s.persistCategories(ctx)
}

// AddSubcategory appends a subcategory to an existing category.
func (s *Store) AddSubcategory(ctx context.Context, categoryID string, sub models.Subcategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID != categoryID {
			continue
		}
		for _, existing := range s.categories[i].Subcategories {
			if existing.ID == sub.ID {
				return fmt.Errorf("%w: subcategory %s", ErrExists, sub.ID)
			}
		}
		s.categories[i].Subcategories = append(s.categories[i].Subcategories, sub)
		return s.persistCategories(ctx)
	}
	return fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
}

// persistProducts writes the product list. If the write fails (typically a
// quota on the backing store) it retries with every product trimmed to its
// primary image; if that also fails the update stays in memory and the
// caller gets a warning error.
func (s *Store) persistProducts(ctx context.Context) error {
	raw, err := json.Marshal(s.products)
	if err != nil {
		return fmt.Errorf("marshal products: %w", err)
	}
	if err := s.kv.Set(ctx, productsKey, raw); err == nil {
		return nil
	}

	trimmed := make([]models.Product, len(s.products))
	copy(trimmed, s.products)
	for i := range trimmed {
		if len(trimmed[i].Images) > 1 {
			trimmed[i].Images = trimmed[i].Images[:1]
		}
	}
	if raw, merr := json.Marshal(trimmed); merr == nil {
		if serr := s.kv.Set(ctx, productsKey, raw); serr == nil {
			s.log.Warn("products persisted with trimmed images")
			return nil
		}
	}

	s.log.Error("product persist failed, update kept in memory only")
	return fmt.Errorf("%w: products not persisted", storage.ErrDegraded)
}

func (s *Store) persistOffers(ctx context.Context) error {
	raw, err := json.Marshal(s.offers)
	if err != nil {
		return fmt.Errorf("marshal offers: %w", err)
	}
	if err := s.kv.Set(ctx, offersKey, raw); err != nil {
		s.log.Error("offer persist failed, update kept in memory only", zap.Error(err))
		return fmt.Errorf("%w: offers not persisted", storage.ErrDegraded)
	}
	return nil
}

func (s *Store) persistCategories(ctx context.Context) error {
	raw, err := json.Marshal(s.categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	if err := s.kv.Set(ctx, categoriesKey, raw); err != nil {
		s.log.Error("category persist failed, update kept in memory only", zap.Error(err))
		return fmt.Errorf("%w: categories not persisted", storage.ErrDegraded)
	}
	return nil
}

func shortUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

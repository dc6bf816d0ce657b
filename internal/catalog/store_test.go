package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arkya-store/storefront-service/internal/models"
	"github.com/arkya-store/storefront-service/internal/storage"
)

type failingKV struct {
	storage.KV
}

func (f *failingKV) Set(_ context.Context, _ string, _ []byte) error {
	return errors.New("quota exceeded")
}

func newTestStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	return NewStore(context.Background(), kv, zap.NewNop()), kv
}

func TestNewStoreSeedsWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	assert.NotEmpty(t, s.Products())
	assert.NotEmpty(t, s.Categories())

	offers := s.Offers()
	require.NotEmpty(t, offers)
	assert.Equal(t, "global-discount-10", offers[0].ID)
	assert.True(t, offers[0].IsGlobal)
}

func TestNewStoreFailsOpenOnCorruptData(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, "admin_products", []byte("[{broken")))

	s := NewStore(ctx, kv, zap.NewNop())

	assert.NotEmpty(t, s.Products())
}

func TestCreateProductAssignsIncreasingIDs(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, err := s.CreateProduct(ctx, models.Product{Name: "A", Price: 10, InStock: true})
	require.NoError(t, err)
	b, err := s.CreateProduct(ctx, models.Product{Name: "B", Price: 10, InStock: true})
	require.NoError(t, err)

	assert.Greater(t, b.ID, a.ID)
}

func TestCreateProductNormalizes(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.CreateProduct(context.Background(), models.Product{
		Name:       "X",
		Price:      10,
		Images:     []string{"", "/a.jpg"},
		Categories: []string{"Mangas"},
		InStock:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/a.jpg"}, created.Images)
	assert.Equal(t, "Mangas", created.Category)
}

func TestUpdateProduct(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, models.Product{Name: "X", Price: 10, InStock: true})
	require.NoError(t, err)

	created.Price = 25
	require.NoError(t, s.UpdateProduct(ctx, created))

	got, ok := s.ProductByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, 25.0, got.Price)
}

func TestUpdateProductNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.UpdateProduct(context.Background(), models.Product{ID: 424242, Name: "X", Price: 10})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProduct(ctx, models.Product{Name: "X", Price: 10, InStock: true})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, created.ID))

	_, ok := s.ProductByID(created.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, s.DeleteProduct(ctx, created.ID), ErrNotFound)
}

func TestEditsSurviveRestart(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	first := NewStore(ctx, kv, zap.NewNop())
	created, err := first.CreateProduct(ctx, models.Product{Name: "Persisted", Price: 10, InStock: true})
	require.NoError(t, err)

	second := NewStore(ctx, kv, zap.NewNop())
	got, ok := second.ProductByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Persisted", got.Name)
}

func TestCreateOfferGeneratesPromotionalCode(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.CreateOffer(context.Background(), models.Offer{
		Title:              "Promo",
		DiscountType:       models.DiscountTypePercentage,
		DiscountPercentage: 15,
		OfferType:          models.OfferTypePromotional,
		IsActive:           true,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Code)
}

func TestCreateOfferKeepsExplicitCode(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.CreateOffer(context.Background(), models.Offer{
		Title:              "Promo",
		DiscountType:       models.DiscountTypePercentage,
		DiscountPercentage: 15,
		OfferType:          models.OfferTypePromotional,
		Code:               "VERANO15",
		IsActive:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, "VERANO15", created.Code)
}

func TestUpdateAndDeleteOffer(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateOffer(ctx, models.Offer{
		Title:              "Temp",
		DiscountType:       models.DiscountTypePercentage,
		DiscountPercentage: 15,
		OfferType:          models.OfferTypeDiscount,
		IsActive:           true,
	})
	require.NoError(t, err)

	created.DiscountPercentage = 25
	require.NoError(t, s.UpdateOffer(ctx, created))
	require.NoError(t, s.DeleteOffer(ctx, created.ID))

	assert.ErrorIs(t, s.DeleteOffer(ctx, created.ID), ErrNotFound)
}

func TestActiveOffersFiltersInactive(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateOffer(ctx, models.Offer{
		Title:              "Dormant",
		DiscountType:       models.DiscountTypePercentage,
		DiscountPercentage: 15,
		OfferType:          models.OfferTypeDiscount,
		IsActive:           false,
	})
	require.NoError(t, err)

	for _, o := range s.ActiveOffers() {
		assert.True(t, o.IsActive)
	}
}

func TestAddCategoryAndSubcategory(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddCategory(ctx, models.Category{ID: "posters", Name: "Posters"}))
	assert.ErrorIs(t, s.AddCategory(ctx, models.Category{ID: "posters", Name: "Posters"}), ErrExists)

	require.NoError(t, s.AddSubcategory(ctx, "posters", models.Subcategory{ID: "a3", Name: "A3"}))
	assert.ErrorIs(t, s.AddSubcategory(ctx, "nope", models.Subcategory{ID: "x", Name: "X"}), ErrNotFound)
}

func TestDegradedPersistKeepsUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, &failingKV{KV: storage.NewMemory()}, zap.NewNop())

	created, err := s.CreateProduct(ctx, models.Product{Name: "X", Price: 10, InStock: true})

	assert.ErrorIs(t, err, storage.ErrDegraded)
	_, ok := s.ProductByID(created.ID)
	assert.True(t, ok)
}

package cart

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

// failingKV rejects every write.
type failingKV struct {
	storage.KV
}

func (f *failingKV) Set(_ context.Context, _ string, _ []byte) error {
	return errors.New("quota exceeded")
}

func newTestLedger(t *testing.T) (*Ledger, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return NewLedger(context.Background(), kv, zap.NewNop()), kv
}

func product(id int64, price float64) models.Product {
	return models.Product{
		ID:      id,
		Name:    "Producto",
		Price:   price,
		Images:  []string{"/img.jpg"},
		InStock: true,
	}
}

func TestAddMergesLinesPerProduct(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	p := product(1, 100)

	require.NoError(t, l.Add(ctx, p, 2))
	require.NoError(t, l.Add(ctx, p, 3))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddSnapshotsDisplayFields(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	p := product(1, 80)
	p.Name = "One Piece Vol. 100"

	require.NoError(t, l.Add(ctx, p, 1))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "One Piece Vol. 100", lines[0].Name)
	assert.Equal(t, 80.0, lines[0].Price)
	assert.Equal(t, "/img.jpg", lines[0].Image)
}

func TestAddOutOfStockRejected(t *testing.T) {
	l, _ := newTestLedger(t)
	p := product(1, 100)
	p.InStock = false

	err := l.Add(context.Background(), p, 1)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Empty(t, l.Lines())
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	require.NoError(t, l.Add(ctx, product(1, 100), 2))

	require.NoError(t, l.UpdateQuantity(ctx, 1, 7))

	assert.Equal(t, 7, l.Lines()[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	require.NoError(t, l.Add(ctx, product(1, 100), 2))

	require.NoError(t, l.UpdateQuantity(ctx, 1, 0))

	assert.Empty(t, l.Lines())
}

func TestRemoveAbsentIsNoError(t *testing.T) {
	l, _ := newTestLedger(t)
	assert.NoError(t, l.Remove(context.Background(), 99))
}

func TestTotals(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	require.NoError(t, l.Add(ctx, product(1, 80), 2))
	require.NoError(t, l.Add(ctx, product(3, 30), 1))

	assert.Equal(t, 190.0, l.Total())
	assert.Equal(t, 3, l.ItemsCount())
}

func TestClear(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := context.Background()
	require.NoError(t, l.Add(ctx, product(1, 80), 2))

	require.NoError(t, l.Clear(ctx))

	assert.Empty(t, l.Lines())
	assert.Equal(t, 0, l.ItemsCount())
	assert.Equal(t, 0.0, l.Total())
}

func TestRehydrateFromStore(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	first := NewLedger(ctx, kv, zap.NewNop())
	require.NoError(t, first.Add(ctx, product(1, 80), 2))

	second := NewLedger(ctx, kv, zap.NewNop())
	lines := second.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestCorruptStoredCartFailsOpen(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Set(ctx, "cart", []byte("{not json")))

	l := NewLedger(ctx, kv, zap.NewNop())

	assert.Empty(t, l.Lines())
}

func TestDegradedPersistKeepsMutation(t *testing.T) {
	ctx := context.Background()
	l := NewLedger(ctx, &failingKV{KV: storage.NewMemory()}, zap.NewNop())

	err := l.Add(ctx, product(1, 100), 1)

	assert.ErrorIs(t, err, storage.ErrDegraded)
	assert.Len(t, l.Lines(), 1)
}

package common_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/wishplan/cmd/common"
	"fjacquet/wishplan/internal/logging"
	"fjacquet/wishplan/internal/models"
	"fjacquet/wishplan/internal/planerror"
	"fjacquet/wishplan/internal/store"
)

func seededStore(t *testing.T) *store.WishlistStore {
	t.Helper()
	s := store.NewWishlistStore(filepath.Join(t.TempDir(), "wishlist.yaml"), &logging.MockLogger{})
	for _, it := range []struct{ id, name string }{
		{"a1", "Headphones"},
		{"b2", "Espresso Machine"},
		{"c3", "espresso machine"},
	} {
		require.NoError(t, s.Add(models.WishlistItem{
			ID:        it.id,
			Name:      it.name,
			Price:     models.NewMoney(decimal.NewFromInt(100), "USD"),
			Priority:  models.PriorityMedium,
			CreatedAt: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		}))
	}
	return s
}

func TestResolveItemByID(t *testing.T) {
	s := seededStore(t)

	item, err := common.ResolveItem(s, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Headphones", item.Name)
}

func TestResolveItemByName(t *testing.T) {
	s := seededStore(t)

	item, err := common.ResolveItem(s, "headphones")
	require.NoError(t, err)
	assert.Equal(t, "a1", item.ID)
}

func TestResolveItemAmbiguousName(t *testing.T) {
	s := seededStore(t)

	_, err := common.ResolveItem(s, "Espresso Machine")
	assert.True(t, planerror.IsInvalidInput(err))
}

func TestResolveItemNotFound(t *testing.T) {
	s := seededStore(t)

	_, err := common.ResolveItem(s, "Telescope")
	assert.True(t, planerror.IsNotFound(err))
}

func TestMoneyFlag(t *testing.T) {
	m, err := common.MoneyFlag("49.90", "USD", "saved")
	require.NoError(t, err)
	assert.Equal(t, "49.9", m.Amount.String())
	assert.Equal(t, "USD", m.Currency)

	m, err = common.MoneyFlag("", "EUR", "saved")
	require.NoError(t, err)
	assert.True(t, m.IsZero())
	assert.Equal(t, "EUR", m.Currency)

	_, err = common.MoneyFlag("abc", "USD", "saved")
	assert.True(t, planerror.IsInvalidInput(err))
}

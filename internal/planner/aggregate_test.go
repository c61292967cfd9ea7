package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/wishplan/internal/models"
)

func itemWithID(id, price string) models.WishlistItem {
	item := testItem(price)
	item.ID = id
	return item
}

func TestAggregateWishlistEmpty(t *testing.T) {
	p := newTestPlanner()

	summary, err := p.AggregateWishlist(nil, nil)
	require.NoError(t, err)

	assert.True(t, summary.TotalValue.IsZero())
	months, reachable := summary.Completion.Months()
	assert.True(t, reachable)
	assert.Zero(t, months)
	assert.Zero(t, summary.ActiveCount)
}

func TestAggregateWishlistTotalsAndCompletion(t *testing.T) {
	p := newTestPlanner()
	items := []models.WishlistItem{
		itemWithID("a", "100"),
		itemWithID("b", "400"),
		itemWithID("c", "250"),
	}

	plans := make(map[string]models.PurchasePlan)
	for _, item := range items {
		plan, err := p.ComputePlan(item, usd("0"), usd("100"), nil)
		require.NoError(t, err)
		plans[item.ID] = plan
	}

	summary, err := p.AggregateWishlist(items, plans)
	require.NoError(t, err)

	assert.Equal(t, "750.00", summary.TotalValue.Amount.StringFixed(2))
	assert.Equal(t, 3, summary.ActiveCount)

	// Completion is the slowest plan: 400 / 100 = 4 months.
	months, reachable := summary.Completion.Months()
	assert.True(t, reachable)
	assert.Equal(t, 4, months)
}

func TestAggregateWishlistSkipsPurchasedItems(t *testing.T) {
	p := newTestPlanner()
	purchasedAt := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	bought := itemWithID("bought", "999")
	bought.Purchased = true
	bought.PurchasedDate = &purchasedAt

	items := []models.WishlistItem{bought, itemWithID("active", "100")}

	summary, err := p.AggregateWishlist(items, nil)
	require.NoError(t, err)

	assert.Equal(t, "100.00", summary.TotalValue.Amount.StringFixed(2))
	assert.Equal(t, 1, summary.ActiveCount)
	assert.Equal(t, 1, summary.PurchasedCount)
}

func TestAggregateWishlistUnreachablePlanMakesCompletionUnbounded(t *testing.T) {
	p := newTestPlanner()
	items := []models.WishlistItem{
		itemWithID("fast", "100"),
		itemWithID("stalled", "5000"),
	}

	fastPlan, err := p.ComputePlan(items[0], usd("0"), usd("100"), nil)
	require.NoError(t, err)
	stalledPlan, err := p.ComputePlan(items[1], usd("0"), usd("0"), nil)
	require.NoError(t, err)

	summary, err := p.AggregateWishlist(items, map[string]models.PurchasePlan{
		"fast":    fastPlan,
		"stalled": stalledPlan,
	})
	require.NoError(t, err)

	assert.False(t, summary.Completion.IsReachable())
	// Total value still counts every active item.
	assert.Equal(t, "5100.00", summary.TotalValue.Amount.StringFixed(2))
}

func TestAggregateWishlistItemsWithoutPlans(t *testing.T) {
	p := newTestPlanner()
	items := []models.WishlistItem{itemWithID("unplanned", "300")}

	summary, err := p.AggregateWishlist(items, nil)
	require.NoError(t, err)

	assert.Equal(t, "300.00", summary.TotalValue.Amount.StringFixed(2))
	months, reachable := summary.Completion.Months()
	assert.True(t, reachable)
	assert.Zero(t, months)
}

package cart

import (
	"testing"

	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []domain.CartItem {
	return []domain.CartItem{
		{ProductID: "p1", RestaurantID: "A", Quantity: 2, UnitPrice: 5},
		{ProductID: "p2", RestaurantID: "B", Quantity: 1, UnitPrice: 3},
		{ProductID: "p3", RestaurantID: "A", Quantity: 1, UnitPrice: 5},
	}
}

func TestGroupByRestaurant(t *testing.T) {
	groups := GroupByRestaurant(sampleItems())

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].RestaurantID)
	assert.Equal(t, "B", groups[1].RestaurantID)
	assert.Equal(t, 15.0, groups[0].Subtotal())
	assert.Equal(t, 3.0, groups[1].Subtotal())
	assert.Equal(t, []string{"p1", "p3"}, []string{groups[0].Items[0].ProductID, groups[0].Items[1].ProductID})
}

func TestGroupByRestaurant_DropsEmptyGroups(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "p1", RestaurantID: "A", Quantity: 0, UnitPrice: 5},
		{ProductID: "p2", RestaurantID: "B", Quantity: 1, UnitPrice: 3},
	}
	groups := GroupByRestaurant(items)
	require.Len(t, groups, 1)
	assert.Equal(t, "B", groups[0].RestaurantID)

	assert.Empty(t, GroupByRestaurant(nil))
}

func TestWithoutRestaurant(t *testing.T) {
	left := WithoutRestaurant(sampleItems(), "A")
	require.Len(t, left, 1)
	assert.Equal(t, "p2", left[0].ProductID)
}

func TestApplyQuantityChange(t *testing.T) {
	items := ApplyQuantityChange(sampleItems(), "p2", -1)
	assert.Len(t, items, 2)

	items = ApplyQuantityChange(items, "p1", 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestSummarize(t *testing.T) {
	restaurants := map[string]domain.RestaurantMeta{
		"A": {ID: "A", Name: "Arepera", Coordinate: "10.0,-60.0"},
	}
	summaries := Summarize(GroupByRestaurant(sampleItems()), restaurants, "10.0,-60.0", pricing.DefaultFeeConfig, 0)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Arepera", summaries[0].RestaurantName)
	assert.True(t, summaries[0].ByDistance)
	assert.Equal(t, pricing.DefaultFeeConfig.Base, summaries[0].Fee)
	assert.Equal(t, 15+pricing.DefaultFeeConfig.Base, summaries[0].Total)

	// restaurant B has no meta, so the fee falls back to the subtotal share
	assert.False(t, summaries[1].ByDistance)
	assert.InDelta(t, 3*0.05+1.5, summaries[1].Fee, 1e-9)
}

package cart

import (
	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/pricing"
)

type Group struct {
	RestaurantID string            `json:"restaurant_id"`
	Items        []domain.CartItem `json:"items"`
}

func (g Group) Subtotal() float64 {
	var sum float64
	for _, it := range g.Items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return sum
}

// GroupByRestaurant keeps restaurants in first-seen order and items in their
// original order. Items with no quantity left are skipped, so a restaurant
// whose items were all removed does not produce a group.
func GroupByRestaurant(items []domain.CartItem) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		i, ok := index[it.RestaurantID]
		if !ok {
			i = len(groups)
			index[it.RestaurantID] = i
			groups = append(groups, Group{RestaurantID: it.RestaurantID})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

func Find(groups []Group, restaurantID string) (Group, bool) {
	for _, g := range groups {
		if g.RestaurantID == restaurantID {
			return g, true
		}
	}
	return Group{}, false
}

// WithoutRestaurant is the local cart after that restaurant's order went through.
func WithoutRestaurant(items []domain.CartItem, restaurantID string) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if it.RestaurantID != restaurantID {
			out = append(out, it)
		}
	}
	return out
}

// ApplyQuantityChange mirrors an add-to-cart delta locally and drops the item
// once its quantity reaches zero.
func ApplyQuantityChange(items []domain.CartItem, productID string, delta int) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == productID {
			it.Quantity += delta
		}
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out
}

type Summary struct {
	RestaurantID   string            `json:"restaurant_id"`
	RestaurantName string            `json:"restaurant_name"`
	Open           bool              `json:"open"`
	Items          []domain.CartItem `json:"items"`
	domain.Quote
}

// Summarize prices each group with the coordinate of its restaurant. A missing
// restaurant entry prices through the fee fallback.
func Summarize(groups []Group, restaurants map[string]domain.RestaurantMeta, userCoord string, fees pricing.FeeConfig, currencyRate float64) []Summary {
	out := make([]Summary, 0, len(groups))
	for _, g := range groups {
		meta := restaurants[g.RestaurantID]
		out = append(out, Summary{
			RestaurantID:   g.RestaurantID,
			RestaurantName: meta.Name,
			Items:          g.Items,
			Quote:          fees.Quote(g.Subtotal(), userCoord, meta.Coordinate, currencyRate),
		})
	}
	return out
}

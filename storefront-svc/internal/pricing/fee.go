package pricing

import (
	"math"

	"riko-storefront/storefront-svc/internal/domain"
	"riko-storefront/storefront-svc/internal/geo"
)

// FeeConfig holds the delivery fee constants. DefaultFeeConfig is the
// canonical set; deployments override individual fields through config.
type FeeConfig struct {
	Base               float64
	RouteCorrection    float64
	PerKmRate          float64
	FallbackPercentage float64
	FallbackFlat       float64
}

var DefaultFeeConfig = FeeConfig{
	Base:               1.5,
	RouteCorrection:    1.3,
	PerKmRate:          0.5,
	FallbackPercentage: 0.05,
	FallbackFlat:       1.5,
}

// DeliveryFee prices by distance when both coordinates parse and falls back to a
// share of the subtotal otherwise. An empty subtotal has no fallback fee.
func (c FeeConfig) DeliveryFee(subtotal float64, userCoord, restaurantCoord string) float64 {
	fee, _ := c.deliveryFee(subtotal, userCoord, restaurantCoord)
	return fee
}

func (c FeeConfig) deliveryFee(subtotal float64, userCoord, restaurantCoord string) (float64, bool) {
	if userCoord != "" && restaurantCoord != "" {
		if d := geo.DistanceKm(userCoord, restaurantCoord); !math.IsNaN(d) {
			return c.Base + d*c.RouteCorrection*c.PerKmRate, true
		}
	}
	if subtotal <= 0 {
		return 0, false
	}
	return subtotal*c.FallbackPercentage + c.FallbackFlat, false
}

// Quote prices a subtotal. Total is what is sent to the backend; DisplayTotal
// is for rendering only.
func (c FeeConfig) Quote(subtotal float64, userCoord, restaurantCoord string, currencyRate float64) domain.Quote {
	fee, byDistance := c.deliveryFee(subtotal, userCoord, restaurantCoord)
	total := subtotal + fee
	q := domain.Quote{
		Subtotal:     subtotal,
		Fee:          fee,
		Total:        total,
		DisplayTotal: RoundForDisplay(total),
		ByDistance:   byDistance,
	}
	if currencyRate > 0 {
		q.LocalTotal = RoundForDisplay(total * currencyRate)
	}
	return q
}

func DeliveryFee(subtotal float64, userCoord, restaurantCoord string) float64 {
	return DefaultFeeConfig.DeliveryFee(subtotal, userCoord, restaurantCoord)
}

func RoundForDisplay(v float64) float64 {
	return math.Round(v*100) / 100
}

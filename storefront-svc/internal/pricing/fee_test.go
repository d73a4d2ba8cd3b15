package pricing

import (
	"testing"

	"riko-storefront/storefront-svc/internal/geo"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryFee_Fallback(t *testing.T) {
	cfg := FeeConfig{Base: 1.5, RouteCorrection: 1.3, PerKmRate: 0.5, FallbackPercentage: 0.05, FallbackFlat: 1.5}

	tests := []struct {
		name       string
		subtotal   float64
		user, rest string
		want       float64
	}{
		{name: "no user location", subtotal: 20, user: "", rest: "10.0,-60.0", want: 2.5},
		{name: "no restaurant location", subtotal: 20, user: "10.0,-60.0", rest: "", want: 2.5},
		{name: "unparseable location", subtotal: 20, user: "somewhere", rest: "10.0,-60.0", want: 2.5},
		{name: "empty subtotal", subtotal: 0, user: "", rest: "", want: 0},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.InDelta(t, testCase.want, cfg.DeliveryFee(testCase.subtotal, testCase.user, testCase.rest), 1e-9)
		})
	}
}

func TestDeliveryFee_SamePointIsBase(t *testing.T) {
	assert.Equal(t, DefaultFeeConfig.Base, DeliveryFee(42, "10.0,-60.0", "10.0,-60.0"))

	custom := DefaultFeeConfig
	custom.Base = 0.8
	assert.Equal(t, 0.8, custom.DeliveryFee(42, "10.0,-60.0", "10.0,-60.0"))
}

func TestDeliveryFee_ByDistance(t *testing.T) {
	user, rest := "0,0", "0.1,0"
	d := geo.DistanceKm(user, rest)
	want := DefaultFeeConfig.Base + d*DefaultFeeConfig.RouteCorrection*DefaultFeeConfig.PerKmRate
	assert.InDelta(t, want, DeliveryFee(10, user, rest), 1e-9)
	// distance pricing ignores the subtotal
	assert.InDelta(t, want, DeliveryFee(1000, user, rest), 1e-9)
}

func TestQuote(t *testing.T) {
	q := DefaultFeeConfig.Quote(20, "", "", 0)
	assert.InDelta(t, 2.5, q.Fee, 1e-9)
	assert.InDelta(t, 22.5, q.Total, 1e-9)
	assert.Equal(t, 22.5, q.DisplayTotal)
	assert.False(t, q.ByDistance)
	assert.Zero(t, q.LocalTotal)

	q = DefaultFeeConfig.Quote(10.333, "10.0,-60.0", "10.0,-60.0", 36.5)
	assert.True(t, q.ByDistance)
	assert.InDelta(t, 11.833, q.Total, 1e-9)
	assert.Equal(t, 11.83, q.DisplayTotal)
	assert.Equal(t, RoundForDisplay(11.833*36.5), q.LocalTotal)
}

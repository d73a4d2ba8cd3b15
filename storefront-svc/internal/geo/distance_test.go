package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Identity(t *testing.T) {
	for _, c := range []string{"0,0", "10.0,-60.0", "-33.45, -70.66", "89.9,179.9"} {
		assert.Equal(t, 0.0, DistanceKm(c, c), c)
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"10.0,-60.0", "10.5,-61.2"},
		{"0,0", "0,90"},
		{"-12.04,-77.03", "40.41,-3.70"},
	}
	for _, p := range pairs {
		assert.InDelta(t, DistanceKm(p[0], p[1]), DistanceKm(p[1], p[0]), 1e-9)
	}
}

func TestDistanceKm_QuarterCircumference(t *testing.T) {
	d := DistanceKm("0,0", "0,90")
	assert.InEpsilon(t, 10007.5, d, 0.01)
}

func TestDistanceKm_Malformed(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{name: "empty", a: "", b: "0,0"},
		{name: "single component", a: "10", b: "0,0"},
		{name: "letters", a: "0,0", b: "abc,def"},
		{name: "three components", a: "1,2,3", b: "0,0"},
		{name: "infinite", a: "Inf,0", b: "0,0"},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.True(t, math.IsNaN(DistanceKm(testCase.a, testCase.b)))
		})
	}
}

func TestParseCoordinate_AllowsSpaces(t *testing.T) {
	c, ok := ParseCoordinate("10.5, -66.9")
	assert.True(t, ok)
	assert.Equal(t, 10.5, c.Lat)
	assert.Equal(t, -66.9, c.Lon)
	assert.Equal(t, "10.5,-66.9", FormatCoordinate(c))
}

func TestEstimateETA(t *testing.T) {
	minutes, ok := EstimateETA("10.0,-60.0", "10.0,-60.0")
	assert.True(t, ok)
	assert.Equal(t, PreparationMinutes, minutes)

	// ~11.1 km north at 30 km/h is 22.2 min, rounded up.
	minutes, ok = EstimateETA("0,0", "0.1,0")
	assert.True(t, ok)
	assert.Equal(t, PreparationMinutes+23, minutes)

	_, ok = EstimateETA("", "0,0")
	assert.False(t, ok)
}

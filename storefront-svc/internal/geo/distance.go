package geo

import (
	"math"
	"strconv"
	"strings"

	"riko-storefront/storefront-svc/internal/domain"
)

const EarthRadiusKm = 6371.0

const (
	PreparationMinutes = 15
	CourierSpeedKmh    = 30.0
)

// ParseCoordinate parses "lat,lon". Surrounding whitespace on either component is
// accepted; anything that does not yield two finite numbers is rejected.
func ParseCoordinate(s string) (domain.Coordinate, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return domain.Coordinate{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return domain.Coordinate{}, false
	}
	return domain.Coordinate{Lat: lat, Lon: lon}, true
}

func FormatCoordinate(c domain.Coordinate) string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// DistanceKm returns the great-circle distance between two "lat,lon" strings.
// It returns NaN when either side does not parse; callers must check.
func DistanceKm(a, b string) float64 {
	p, ok := ParseCoordinate(a)
	if !ok {
		return math.NaN()
	}
	q, ok := ParseCoordinate(b)
	if !ok {
		return math.NaN()
	}
	return Haversine(p, q)
}

func Haversine(p, q domain.Coordinate) float64 {
	dLat := toRadians(q.Lat - p.Lat)
	dLon := toRadians(q.Lon - p.Lon)
	lat1 := toRadians(p.Lat)
	lat2 := toRadians(q.Lat)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EstimateETA is the preparation time plus the rounded-up ride time at the
// average courier speed.
func EstimateETA(user, restaurant string) (int, bool) {
	d := DistanceKm(user, restaurant)
	if math.IsNaN(d) {
		return 0, false
	}
	ride := int(math.Ceil(d / CourierSpeedKmh * 60))
	return PreparationMinutes + ride, true
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

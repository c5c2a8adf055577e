package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKM is the mean Earth radius in kilometers
const EarthRadiusKM = 6371.0

// HaversineKM calculates the great-circle distance between two points in
// kilometers using the Haversine formula.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180.0
	rLon1 := lon1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLon2 := lon2 * math.Pi / 180.0

	dLat := rLat2 - rLat1
	dLon := rLon2 - rLon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

// SurgeCell buckets a coordinate into a ~0.01 degree grid cell
func SurgeCell(lat, lon float64) string {
	latBucket := int(math.Floor(lat * 100.0))
	lonBucket := int(math.Floor(lon * 100.0))
	return fmt.Sprintf("%d:%d", latBucket, lonBucket)
}

// EncodeLocation converts a coordinate to a geohash string for event
// payloads and downstream location analytics.
func EncodeLocation(lat, lon float64) string {
	return geohash.EncodeWithPrecision(lat, lon, 9)
}

// ValidCoordinate reports whether a latitude/longitude pair is in range
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

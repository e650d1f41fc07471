package geo

import "math"

// earthRadiusMeters is the spherical-earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// DistanceMeters menghitung jarak antara dua titik koordinat dalam Meter
// menggunakan rumus Haversine.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsWithinFence reports whether the point is inside (or on) the circular
// fence around the office reference point.
func IsWithinFence(lat, lon, officeLat, officeLon, radiusMeters float64) bool {
	return DistanceMeters(lat, lon, officeLat, officeLon) <= radiusMeters
}

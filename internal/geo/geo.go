// Package geo provides great-circle distance math for airport coordinates.
package geo

import "math"

const earthRadiusKm = 6371.0

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(a, b Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lon1 := toRadians(a.Lon)
	lat2 := toRadians(b.Lat)
	lon2 := toRadians(b.Lon)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DistanceTo returns the haversine distance from c to other in kilometers.
func (c Coordinates) DistanceTo(other Coordinates) float64 {
	return Haversine(c, other)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

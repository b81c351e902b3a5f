package core

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// degToRad converts decimal degrees to radians.
const degToRad = math.Pi / 180

// GreatCircleKm returns the haversine distance in kilometres between two
// coordinates given in decimal degrees.
//
// Complexity: O(1).
func GreatCircleKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1R := lat1 * degToRad
	lat2R := lat2 * degToRad
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	// Haversine formula.
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1R)*math.Cos(lat2R)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

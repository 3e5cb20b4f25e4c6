package domain

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// ReferencePoint is a named fixed coordinate distances are measured from.
type ReferencePoint struct {
	Name string
	Coordinate
}

// LabCentralDepot is the fixed reference location of the lab.
var LabCentralDepot = ReferencePoint{
	Name:       "Lab Central Depot",
	Coordinate: Coordinate{Lat: 18.6655, Lng: 73.7635},
}

// DistanceKm computes the great-circle distance between two
// coordinates with the haversine formula, rounded to two decimals.
func DistanceKm(from, to Coordinate) float64 {
	dLat := radians(to.Lat - from.Lat)
	dLng := radians(to.Lng - from.Lng)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(from.Lat))*math.Cos(radians(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return math.Round(earthRadiusKm*c*100) / 100
}

func radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

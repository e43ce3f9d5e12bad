// Package geodata holds the static city coordinate table and the pairwise
// great-circle distances derived from it. The table is built once and never
// mutated, so concurrent lookups need no synchronization.
package geodata

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371

// Table resolves precomputed distances between known cities.
type Table struct {
	distances map[cityPair]float64
	cities    []string
}

type cityPair struct {
	a, b string
}

// NewTable precomputes all unique pair distances via the haversine formula,
// rounded to 3 decimals.
func NewTable() *Table {
	cities := make([]string, 0, len(cityCoords))
	for name := range cityCoords {
		cities = append(cities, name)
	}
	sort.Strings(cities)

	distances := make(map[cityPair]float64, len(cities)*(len(cities)-1)/2)
	for i := 0; i < len(cities); i++ {
		for j := i + 1; j < len(cities); j++ {
			from := cityCoords[cities[i]]
			to := cityCoords[cities[j]]
			km := Haversine(from.Lat, from.Lng, to.Lat, to.Lng)
			distances[cityPair{cities[i], cities[j]}] = math.Round(km*1000) / 1000
		}
	}

	return &Table{distances: distances, cities: cities}
}

// DistanceKm returns the distance between two cities, matching either
// ordering of the pair. ok is false when either city is not in the table.
func (t *Table) DistanceKm(cityA, cityB string) (float64, bool) {
	if km, ok := t.distances[cityPair{cityA, cityB}]; ok {
		return km, true
	}
	if km, ok := t.distances[cityPair{cityB, cityA}]; ok {
		return km, true
	}
	return 0, false
}

// Cities lists the known city names in sorted order.
func (t *Table) Cities() []string {
	out := make([]string, len(t.cities))
	copy(out, t.cities)
	return out
}

// Haversine computes the great-circle distance in kilometers between two
// lat/lng points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/mmcloughlin/geohash"
)

// DefaultNearPrecision is about 39x20 km per cell, which with neighbors covers a regency
const DefaultNearPrecision uint = 4

const earthRadiusKm = 6371.0

// Nearby is an item with its distance from the search point
type Nearby struct {
	Item       Item
	DistanceKm float64
}

// Geohash returns the geohash of an item, or "" when it has no coordinates
func Geohash(item Item, precision uint) string {
	if item.Coordinates == nil {
		return ""
	}
	return geohash.EncodeWithPrecision(item.Coordinates.Latitude, item.Coordinates.Longitude, precision)
}

// Near returns items located in the geohash cell of (lat, lon) or one of its
// neighbors, ordered by distance.
func (c *Catalog) Near(lat, lon float64, precision uint) []Nearby {
	if precision == 0 {
		precision = DefaultNearPrecision
	}

	center := geohash.EncodeWithPrecision(lat, lon, precision)
	cells := map[string]bool{center: true}
	for _, n := range geohash.Neighbors(center) {
		cells[n] = true
	}

	var out []Nearby
	for _, item := range c.items {
		hash := Geohash(item, precision)
		if hash == "" || !cells[hash] {
			continue
		}
		out = append(out, Nearby{
			Item:       item.Clone(),
			DistanceKm: haversineKm(lat, lon, item.Coordinates.Latitude, item.Coordinates.Longitude),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// MapURL returns a map link for an item, or "" when it has no coordinates
func MapURL(item Item) string {
	if item.Coordinates == nil {
		return ""
	}
	lat, lon := item.Coordinates.Latitude, item.Coordinates.Longitude
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.5f&mlon=%.5f#map=15/%.5f/%.5f", lat, lon, lat, lon)
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

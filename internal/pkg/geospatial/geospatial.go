// Package geospatial holds the small amount of map geometry the tool
// needs: great-circle distances, route chaining, and a camera fit.
package geospatial

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
)

const earthRadiusKm = 6371.0

// Haversine calculates the great-circle distance in kilometres between two points.
func Haversine(a, b domain.GeoPoint) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Midpoint returns the arithmetic midpoint of two points. It only anchors
// distance labels, so the planar approximation is fine at stay scale.
func Midpoint(a, b domain.GeoPoint) domain.GeoPoint {
	return domain.GeoPoint{Lat: (a.Lat + b.Lat) / 2, Lng: (a.Lng + b.Lng) / 2}
}

// BuildRoute chains consecutive points into straight segments with
// per-segment and total distances. Fewer than two points yields an
// empty route.
func BuildRoute(points []domain.GeoPoint) domain.Route {
	var r domain.Route
	if len(points) < 2 {
		return r
	}

	r.Segments = make([]domain.Segment, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		d := Haversine(points[i], points[i+1])
		r.Segments = append(r.Segments, domain.Segment{
			From:       points[i],
			To:         points[i+1],
			Midpoint:   Midpoint(points[i], points[i+1]),
			DistanceKm: d,
		})
		r.TotalKm += d
	}
	return r
}

// FitView picks a center and zoom covering all points. The center is the
// arithmetic mean of the coordinates; the zoom level falls out of the
// larger of the latitude and longitude spreads.
func FitView(points []domain.GeoPoint) domain.View {
	if len(points) == 0 {
		return domain.View{Center: domain.GeoPoint{}, Zoom: 2}
	}

	var sumLat, sumLng float64
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
		mp = append(mp, orb.Point{p.Lng, p.Lat})
	}
	n := float64(len(points))

	bound := mp.Bound()
	span := math.Max(bound.Max.Lat()-bound.Min.Lat(), bound.Max.Lon()-bound.Min.Lon())

	return domain.View{
		Center: domain.GeoPoint{Lat: sumLat / n, Lng: sumLng / n},
		Zoom:   zoomFor(span),
	}
}

func zoomFor(span float64) int {
	switch {
	case span > 10:
		return 5
	case span > 1:
		return 9
	case span > 0.1:
		return 12
	case span > 0.01:
		return 14
	default:
		return 16
	}
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

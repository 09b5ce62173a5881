package export

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strconv"
	"strings"

	kml "github.com/twpayne/go-kml/v3"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
)

// KML writes stays as a folder of placemarks plus a styled route line,
// for Google Earth and friends.
type KML struct {
	RouteColor  string // #rrggbb
	RouteWeight int
}

// Export implements ports.Exporter.
func (k KML) Export(w io.Writer, stays []domain.Stay, route domain.Route) error {
	folder := []kml.Element{kml.Name("Stays")}
	for _, s := range stays {
		folder = append(folder, kml.Placemark(
			kml.Name(fmt.Sprintf("Location #%d", s.Ordinal)),
			kml.Description(describe(s)),
			kml.Point(kml.Coordinates(kml.Coordinate{Lon: s.Location.Lng, Lat: s.Location.Lat})),
		))
	}

	doc := []kml.Element{kml.Name("GPS Stays"), kml.Folder(folder...)}

	if len(route.Segments) > 0 {
		coords := make([]kml.Coordinate, 0, len(route.Segments)+1)
		coords = append(coords, kml.Coordinate{Lon: route.Segments[0].From.Lng, Lat: route.Segments[0].From.Lat})
		for _, seg := range route.Segments {
			coords = append(coords, kml.Coordinate{Lon: seg.To.Lng, Lat: seg.To.Lat})
		}

		doc = append(doc, kml.Placemark(
			kml.Name(fmt.Sprintf("Route (%.1f km)", route.TotalKm)),
			kml.Style(kml.LineStyle(
				kml.Color(lineColor(k.RouteColor)),
				kml.Width(float64(k.RouteWeight)),
			)),
			kml.LineString(kml.Coordinates(coords...)),
		))
	}

	return kml.KML(kml.Document(doc...)).WriteIndent(w, "", "  ")
}

func describe(s domain.Stay) string {
	lines := []string{fmt.Sprintf("Coords: %.6f, %.6f", s.Location.Lat, s.Location.Lng)}

	keys := make([]string, 0, len(s.Fields))
	for k := range s.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, s.Fields[k]))
	}
	return strings.Join(lines, "\n")
}

// lineColor parses a #rrggbb string; bad input falls back to opaque red.
func lineColor(hex string) color.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{R: 0xff, A: 0xff}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{R: 0xff, A: 0xff}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}

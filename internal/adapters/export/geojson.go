// Package export encodes stays and their route into interchange formats
// readable by other mapping tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
)

// GeoJSON writes stays as a FeatureCollection: one Point feature per stay
// and a LineString feature for the connecting route.
type GeoJSON struct{}

// Export implements ports.Exporter.
func (GeoJSON) Export(w io.Writer, stays []domain.Stay, route domain.Route) error {
	fc := geojson.NewFeatureCollection()

	for _, s := range stays {
		f := geojson.NewFeature(orb.Point{s.Location.Lng, s.Location.Lat})
		f.Properties["ordinal"] = s.Ordinal
		f.Properties["name"] = fmt.Sprintf("Location #%d", s.Ordinal)
		for k, v := range s.Fields {
			f.Properties[k] = v
		}
		fc.Append(f)
	}

	if len(route.Segments) > 0 {
		line := make(orb.LineString, 0, len(route.Segments)+1)
		line = append(line, orb.Point{route.Segments[0].From.Lng, route.Segments[0].From.Lat})
		for _, seg := range route.Segments {
			line = append(line, orb.Point{seg.To.Lng, seg.To.Lat})
		}

		f := geojson.NewFeature(line)
		f.Properties["name"] = "Route"
		f.Properties["total_km"] = route.TotalKm
		fc.Append(f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}

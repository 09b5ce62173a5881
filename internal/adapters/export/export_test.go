package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
	"github.com/rishab9750/map-my-locations/internal/pkg/geospatial"
)

func fixtures() ([]domain.Stay, domain.Route) {
	stays := []domain.Stay{
		{
			Ordinal:  1,
			Location: domain.GeoPoint{Lat: 43.2630, Lng: -2.9350},
			Fields:   map[string]any{"duration": "2h"},
		},
		{
			Ordinal:  2,
			Location: domain.GeoPoint{Lat: 43.3183, Lng: -1.9812},
			Fields:   map[string]any{},
		},
	}
	points := make([]domain.GeoPoint, len(stays))
	for i, s := range stays {
		points[i] = s.Location
	}
	return stays, geospatial.BuildRoute(points)
}

func TestGeoJSON_Export(t *testing.T) {
	stays, route := fixtures()

	var buf bytes.Buffer
	if err := (GeoJSON{}).Export(&buf, stays, route); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string `json:"type"`
				Coordinates any    `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(buf.Bytes(), &fc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if fc.Type != "FeatureCollection" {
		t.Errorf("expected FeatureCollection, got %q", fc.Type)
	}
	if len(fc.Features) != 3 {
		t.Fatalf("expected 2 points + 1 route, got %d features", len(fc.Features))
	}

	first := fc.Features[0]
	if first.Geometry.Type != "Point" {
		t.Errorf("expected Point geometry, got %q", first.Geometry.Type)
	}
	coords, ok := first.Geometry.Coordinates.([]any)
	if !ok || len(coords) < 2 {
		t.Fatalf("unexpected coordinates: %v", first.Geometry.Coordinates)
	}
	// GeoJSON ordering is [lng, lat].
	if coords[0] != -2.9350 || coords[1] != 43.2630 {
		t.Errorf("expected [lng, lat] ordering, got %v", coords)
	}
	if first.Properties["duration"] != "2h" {
		t.Errorf("expected duration property, got %v", first.Properties["duration"])
	}

	last := fc.Features[2]
	if last.Geometry.Type != "LineString" {
		t.Errorf("expected LineString for the route, got %q", last.Geometry.Type)
	}
	if _, ok := last.Properties["total_km"]; !ok {
		t.Error("expected total_km property on the route feature")
	}
}

func TestGeoJSON_NoRouteForSingleStay(t *testing.T) {
	stays, _ := fixtures()

	var buf bytes.Buffer
	if err := (GeoJSON{}).Export(&buf, stays[:1], domain.Route{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "LineString") {
		t.Error("expected no route feature for a single stay")
	}
}

func TestKML_Export(t *testing.T) {
	stays, route := fixtures()

	var buf bytes.Buffer
	err := KML{RouteColor: "#ff4757", RouteWeight: 4}.Export(&buf, stays, route)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"<kml", "Location #1", "Location #2", "<LineString>", "duration: 2h", "-2.935"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in KML output", want)
		}
	}
}

func TestLineColor(t *testing.T) {
	c := lineColor("#ff4757")
	r, g, b, a := c.RGBA()
	if r>>8 != 0xff || g>>8 != 0x47 || b>>8 != 0x57 || a>>8 != 0xff {
		t.Errorf("unexpected color: %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}

	r, _, _, a = lineColor("garbage").RGBA()
	if r>>8 != 0xff || a>>8 != 0xff {
		t.Error("expected red fallback for bad input")
	}
}

// Package gpxfile extracts stay records from GPX waypoints.
package gpxfile

import (
	"context"
	"fmt"
	"time"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
)

// Source reads stays from a GPX file. Waypoints are preferred; files
// without waypoints fall back to route points.
type Source struct {
	Path string
}

// New returns a Source for the given GPX file.
func New(path string) *Source {
	return &Source{Path: path}
}

// Stays implements ports.StaySource.
func (s *Source) Stays(ctx context.Context) ([]domain.Stay, error) {
	g, err := gpx.ParseFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("parse gpx: %w", err)
	}

	points := g.Waypoints
	if len(points) == 0 {
		for _, r := range g.Routes {
			points = append(points, r.Points...)
		}
	}

	stays := make([]domain.Stay, 0, len(points))
	for i, wp := range points {
		fields := make(map[string]any)
		if wp.Name != "" {
			fields["name"] = wp.Name
		}
		if wp.Description != "" {
			fields["description"] = wp.Description
		}
		if !wp.Timestamp.IsZero() {
			fields["start"] = wp.Timestamp.Format(time.RFC3339)
		}

		stays = append(stays, domain.Stay{
			Ordinal:  i + 1,
			Location: domain.GeoPoint{Lat: wp.Latitude, Lng: wp.Longitude},
			Fields:   fields,
		})
	}
	return stays, nil
}

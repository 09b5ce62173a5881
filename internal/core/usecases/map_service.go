package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
	"github.com/rishab9750/map-my-locations/internal/core/ports"
	"github.com/rishab9750/map-my-locations/internal/pkg/geospatial"
)

// MapService builds the HTML map artifact from a stay source.
type MapService struct {
	source   ports.StaySource
	renderer ports.MapRenderer
	opener   ports.Opener
}

// NewMapService creates a new MapService. opener may be nil when opening
// the artifact is not wanted.
func NewMapService(source ports.StaySource, renderer ports.MapRenderer, opener ports.Opener) *MapService {
	return &MapService{source: source, renderer: renderer, opener: opener}
}

// BuildResult reports what a Build produced.
type BuildResult struct {
	Path    string
	Stays   int
	TotalKm float64
}

// Build extracts stays, computes the route and view, and writes the HTML
// artifact to outputPath. When open is set the artifact is then opened in
// the default browser; a failure to open is logged, not fatal.
func (s *MapService) Build(ctx context.Context, outputPath string, open bool) (*BuildResult, error) {
	stays, err := s.source.Stays(ctx)
	if err != nil {
		return nil, err
	}
	if len(stays) == 0 {
		return nil, fmt.Errorf("no stays found in input")
	}

	points := locations(stays)
	view := geospatial.FitView(points)
	route := geospatial.BuildRoute(points)

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", outputPath, err)
	}
	if err := s.renderer.Render(f, stays, route, view); err != nil {
		f.Close()
		return nil, fmt.Errorf("render map: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("write %s: %w", outputPath, err)
	}

	slog.Info("map saved", "path", outputPath, "stays", len(stays), "total_km", route.TotalKm)

	if open && s.opener != nil {
		if err := s.opener.Open(outputPath); err != nil {
			slog.Warn("could not open browser", "error", err)
		}
	}

	return &BuildResult{Path: outputPath, Stays: len(stays), TotalKm: route.TotalKm}, nil
}

func locations(stays []domain.Stay) []domain.GeoPoint {
	pts := make([]domain.GeoPoint, len(stays))
	for i, s := range stays {
		pts[i] = s.Location
	}
	return pts
}

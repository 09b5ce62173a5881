package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rishab9750/map-my-locations/internal/core/ports"
	"github.com/rishab9750/map-my-locations/internal/pkg/geospatial"
)

// ExportService encodes stays into an interchange format.
type ExportService struct {
	source   ports.StaySource
	exporter ports.Exporter
}

// NewExportService creates a new ExportService.
func NewExportService(source ports.StaySource, exporter ports.Exporter) *ExportService {
	return &ExportService{source: source, exporter: exporter}
}

// Export extracts stays, builds the route, and writes the encoded result
// to outputPath.
func (s *ExportService) Export(ctx context.Context, outputPath string) error {
	stays, err := s.source.Stays(ctx)
	if err != nil {
		return err
	}
	if len(stays) == 0 {
		return fmt.Errorf("no stays found in input")
	}

	route := geospatial.BuildRoute(locations(stays))

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	if err := s.exporter.Export(f, stays, route); err != nil {
		f.Close()
		return fmt.Errorf("export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	slog.Info("export saved", "path", outputPath, "stays", len(stays))
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishab9750/map-my-locations/internal/adapters/export"
	"github.com/rishab9750/map-my-locations/internal/core/ports"
	"github.com/rishab9750/map-my-locations/internal/core/usecases"
	"github.com/rishab9750/map-my-locations/internal/pkg/config"
)

func newExportCmd(opts *options) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export <input-file>",
		Short: "Export stays as GeoJSON or KML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), args[0], format, output, opts)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "geojson", "export format: geojson or kml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stays.geojson or stays.kml)")
	return cmd
}

func runExport(ctx context.Context, input, format, output string, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	source, err := newSource(input, opts)
	if err != nil {
		return err
	}

	var exporter ports.Exporter
	switch format {
	case "geojson":
		exporter = export.GeoJSON{}
		if output == "" {
			output = "stays.geojson"
		}
	case "kml":
		exporter = export.KML{RouteColor: cfg.Route.Color, RouteWeight: cfg.Route.Weight}
		if output == "" {
			output = "stays.kml"
		}
	default:
		return fmt.Errorf("unknown export format %q (want geojson or kml)", format)
	}

	return usecases.NewExportService(source, exporter).Export(ctx, output)
}

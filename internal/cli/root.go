// Package cli wires the geostay commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rishab9750/map-my-locations/internal/adapters/browser"
	"github.com/rishab9750/map-my-locations/internal/adapters/gpxfile"
	"github.com/rishab9750/map-my-locations/internal/adapters/jsonfile"
	"github.com/rishab9750/map-my-locations/internal/adapters/leaflet"
	"github.com/rishab9750/map-my-locations/internal/adapters/watch"
	"github.com/rishab9750/map-my-locations/internal/core/ports"
	"github.com/rishab9750/map-my-locations/internal/core/usecases"
	"github.com/rishab9750/map-my-locations/internal/pkg/config"
	"github.com/rishab9750/map-my-locations/internal/pkg/logging"
)

type options struct {
	arrayPath   string
	latKey      string
	lngKey      string
	inputFormat string
	output      string
	title       string
	open        bool
	watch       bool
	configPath  string
	logLevel    string
	logFormat   string
}

// Execute runs the geostay CLI.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "geostay: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "geostay <input-file>",
		Short: "Plot GPS stays on an interactive map",
		Long: `geostay reads a location history from a JSON (or GPX) file, extracts
stay records through configurable key paths, and renders them as an
interactive HTML map with numbered markers, popups, and straight-line
routes between consecutive stays.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.logLevel, opts.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd.Context(), args[0], opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.arrayPath, "array-path", "a", "", "dotted path to the stays array (e.g. 'route.stays')")
	pf.StringVarP(&opts.latKey, "lat-key", "x", "location[0]", "path to latitude within each stay")
	pf.StringVarP(&opts.lngKey, "lng-key", "y", "location[1]", "path to longitude within each stay")
	pf.StringVar(&opts.inputFormat, "input-format", "", "input format: json or gpx (default by file extension)")
	pf.StringVar(&opts.configPath, "config", "", "config file (default geostay.yaml in . or ~/.config/geostay)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output HTML file (default map.html)")
	f.StringVar(&opts.title, "title", "", "map page title")
	f.BoolVar(&opts.open, "open", true, "open the map in the default browser")
	f.BoolVarP(&opts.watch, "watch", "w", false, "keep running and re-render when the input changes")

	cmd.AddCommand(newExportCmd(opts))
	return cmd
}

func runMap(ctx context.Context, input string, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.title != "" {
		cfg.Map.Title = opts.title
	}
	output := opts.output
	if output == "" {
		output = cfg.Output
	}

	source, err := newSource(input, opts)
	if err != nil {
		return err
	}

	svc := usecases.NewMapService(source, leaflet.New(cfg), browser.Opener{})

	if _, err := svc.Build(ctx, output, opts.open); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("watching for changes", "path", input)
	return watch.Run(ctx, input, func(ctx context.Context) error {
		// The artifact is only opened on the first render.
		_, err := svc.Build(ctx, output, false)
		return err
	})
}

func newSource(input string, opts *options) (ports.StaySource, error) {
	format := opts.inputFormat
	if format == "" {
		if strings.EqualFold(filepath.Ext(input), ".gpx") {
			format = "gpx"
		} else {
			format = "json"
		}
	}

	switch format {
	case "json":
		return jsonfile.New(input, opts.arrayPath, opts.latKey, opts.lngKey), nil
	case "gpx":
		return gpxfile.New(input), nil
	default:
		return nil, fmt.Errorf("unknown input format %q (want json or gpx)", format)
	}
}

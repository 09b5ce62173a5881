package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tool configuration.
type Config struct {
	Output string      `mapstructure:"output"`
	Map    MapConfig   `mapstructure:"map"`
	Route  RouteConfig `mapstructure:"route"`
	Popup  PopupConfig `mapstructure:"popup"`
}

// MapConfig controls the rendered page and its tile layer.
type MapConfig struct {
	Title       string   `mapstructure:"title"`
	TilesURL    string   `mapstructure:"tiles_url"`
	Attribution string   `mapstructure:"attribution"`
	Palette     []string `mapstructure:"palette"` // marker colors, cycled per stay
}

// RouteConfig styles the straight-line segments between stays.
type RouteConfig struct {
	Color   string  `mapstructure:"color"`
	Weight  int     `mapstructure:"weight"`
	Opacity float64 `mapstructure:"opacity"`
}

// PopupField maps a stay field key to the label shown in its popup.
type PopupField struct {
	Key   string `mapstructure:"key"`
	Label string `mapstructure:"label"`
}

// PopupConfig lists the stay fields surfaced in marker popups, in order.
type PopupConfig struct {
	Fields []PopupField `mapstructure:"fields"`
}

// defaultPalette cycles markers through seventeen distinct colors.
var defaultPalette = []string{
	"#d63e2a", "#38aadd", "#72b026", "#d252b9", "#f69730", "#a23336",
	"#ff8e7f", "#ffcb92", "#0067a3", "#728224", "#436978", "#5b396b",
	"#ff91ea", "#8adaff", "#bbf970", "#575757", "#303030",
}

var defaultPopupFields = []map[string]string{
	{"key": "stayNumber", "label": "Stay #"},
	{"key": "start", "label": "Start"},
	{"key": "end", "label": "End"},
	{"key": "duration", "label": "Duration"},
	{"key": "dataPoints", "label": "Points"},
	{"key": "averageSpeed", "label": "Avg Speed"},
	{"key": "searchRadius", "label": "Radius"},
}

// Load reads configuration from an optional file and environment variables.
// An empty path means the default search locations (the working directory,
// then ~/.config/geostay); a missing file there is fine.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output", "map.html")
	v.SetDefault("map.title", "My Location Stays")
	v.SetDefault("map.tiles_url", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.attribution", "&copy; OpenStreetMap contributors")
	v.SetDefault("map.palette", defaultPalette)
	v.SetDefault("route.color", "#ff4757")
	v.SetDefault("route.weight", 4)
	v.SetDefault("route.opacity", 0.8)
	v.SetDefault("popup.fields", defaultPopupFields)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("geostay")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "geostay"))
		}
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: GEOSTAY_MAP_TILES_URL -> map.tiles_url
	v.SetEnvPrefix("GEOSTAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Output == "" {
		errs = append(errs, "output is required")
	}
	if c.Map.TilesURL == "" {
		errs = append(errs, "map.tiles_url is required")
	}
	if len(c.Map.Palette) == 0 {
		errs = append(errs, "map.palette must have at least one color")
	}
	for _, col := range c.Map.Palette {
		if !hexColorRe.MatchString(col) {
			errs = append(errs, fmt.Sprintf("map.palette entry %q is not a #rrggbb color", col))
		}
	}
	if !hexColorRe.MatchString(c.Route.Color) {
		errs = append(errs, fmt.Sprintf("route.color %q is not a #rrggbb color", c.Route.Color))
	}
	if c.Route.Weight < 1 {
		errs = append(errs, fmt.Sprintf("route.weight must be at least 1, got %d", c.Route.Weight))
	}
	if c.Route.Opacity <= 0 || c.Route.Opacity > 1 {
		errs = append(errs, fmt.Sprintf("route.opacity must be in (0, 1], got %g", c.Route.Opacity))
	}
	for _, f := range c.Popup.Fields {
		if f.Key == "" {
			errs = append(errs, "popup.fields entries need a key")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

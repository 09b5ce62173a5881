package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray geostay.yaml is picked up.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Output != "map.html" {
		t.Errorf("expected default output map.html, got %q", cfg.Output)
	}
	if cfg.Route.Color != "#ff4757" {
		t.Errorf("expected default route color #ff4757, got %q", cfg.Route.Color)
	}
	if len(cfg.Map.Palette) != 17 {
		t.Errorf("expected 17 palette colors, got %d", len(cfg.Map.Palette))
	}
	if len(cfg.Popup.Fields) != 7 {
		t.Fatalf("expected 7 default popup fields, got %d", len(cfg.Popup.Fields))
	}
	if cfg.Popup.Fields[0].Key != "stayNumber" || cfg.Popup.Fields[0].Label != "Stay #" {
		t.Errorf("unexpected first popup field: %+v", cfg.Popup.Fields[0])
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geostay.yaml")
	yaml := "output: trip.html\nmap:\n  title: Summer Trip\nroute:\n  color: \"#00ff00\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "trip.html" {
		t.Errorf("expected output trip.html, got %q", cfg.Output)
	}
	if cfg.Map.Title != "Summer Trip" {
		t.Errorf("expected title override, got %q", cfg.Map.Title)
	}
	if cfg.Route.Color != "#00ff00" {
		t.Errorf("expected route color override, got %q", cfg.Route.Color)
	}
	// Untouched keys keep their defaults.
	if cfg.Route.Weight != 4 {
		t.Errorf("expected default weight 4, got %d", cfg.Route.Weight)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := &Config{
		Output: "",
		Map:    MapConfig{TilesURL: "", Palette: []string{"red"}},
		Route:  RouteConfig{Color: "#ff4757", Weight: 0, Opacity: 1.5},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"output", "tiles_url", "palette", "weight", "opacity"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}
}

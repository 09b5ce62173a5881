// Package jsonfile extracts stay records from a JSON document on disk,
// locating the array and each element's coordinates through configurable
// key paths.
package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
)

// Source reads stays out of a JSON file.
type Source struct {
	Path      string
	ArrayPath string // path to the stays array; empty means the document root
	LatKey    string // per-element path to latitude
	LngKey    string // per-element path to longitude
}

// New returns a Source for the given file and key paths.
func New(path, arrayPath, latKey, lngKey string) *Source {
	return &Source{Path: path, ArrayPath: arrayPath, LatKey: latKey, LngKey: lngKey}
}

// Stays implements ports.StaySource.
func (s *Source) Stays(ctx context.Context) ([]domain.Stay, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse %s: not valid JSON", s.Path)
	}

	node, err := resolve(string(data), s.ArrayPath)
	if err != nil {
		return nil, fmt.Errorf("invalid array path %q: %w", s.ArrayPath, err)
	}
	if !node.IsArray() {
		return nil, fmt.Errorf("value at %q is %s, not an array", s.ArrayPath, typeName(node))
	}

	elems := node.Array()
	stays := make([]domain.Stay, 0, len(elems))
	for i, elem := range elems {
		stay, err := s.stayFrom(i+1, elem)
		if err != nil {
			return nil, err
		}
		stays = append(stays, stay)
	}
	return stays, nil
}

func (s *Source) stayFrom(ordinal int, elem gjson.Result) (domain.Stay, error) {
	if !elem.IsObject() {
		return domain.Stay{}, fmt.Errorf("stay %d is %s, not an object", ordinal, typeName(elem))
	}

	lat, err := coord(elem, s.LatKey)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("stay %d: latitude at %q: %w", ordinal, s.LatKey, err)
	}
	lng, err := coord(elem, s.LngKey)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("stay %d: longitude at %q: %w", ordinal, s.LngKey, err)
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		slog.Warn("coordinates outside WGS 84 range", "stay", ordinal, "lat", lat, "lng", lng)
	}

	fields := make(map[string]any)
	for k, v := range elem.Map() {
		fields[k] = v.Value()
	}

	return domain.Stay{
		Ordinal:  ordinal,
		Location: domain.GeoPoint{Lat: lat, Lng: lng},
		Fields:   fields,
	}, nil
}

func coord(elem gjson.Result, path string) (float64, error) {
	node, err := resolve(elem.Raw, path)
	if err != nil {
		return 0, err
	}
	if node.Type != gjson.Number {
		return 0, fmt.Errorf("value is %s, not a number", typeName(node))
	}
	return node.Float(), nil
}

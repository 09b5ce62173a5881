// Package leaflet renders stays onto an interactive Leaflet map and
// writes it as a single shareable HTML page.
package leaflet

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
	"github.com/rishab9750/map-my-locations/internal/pkg/config"
)

//go:embed map.tmpl.html
var mapHTML string

var mapTemplate = template.Must(template.New("map").Parse(mapHTML))

// Renderer builds the HTML page from configured styles.
type Renderer struct {
	cfg *config.Config
}

// New returns a Renderer using the given configuration.
func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

type marker struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Color   string  `json:"color"`
	Badge   int     `json:"badge"`
	Tooltip string  `json:"tooltip"`
	Popup   string  `json:"popup"`
}

type segment struct {
	From  [2]float64 `json:"from"`
	To    [2]float64 `json:"to"`
	Mid   [2]float64 `json:"mid"`
	Label string     `json:"label"`
	Popup string     `json:"popup"`
}

type pageData struct {
	Title        string
	TilesURL     string
	Attribution  string
	CenterLat    float64
	CenterLng    float64
	Zoom         int
	RouteColor   string
	RouteWeight  int
	RouteOpacity float64
	Markers      template.JS
	Segments     template.JS
}

// Render implements ports.MapRenderer.
func (r *Renderer) Render(w io.Writer, stays []domain.Stay, route domain.Route, view domain.View) error {
	palette := r.cfg.Map.Palette

	markers := make([]marker, 0, len(stays))
	for i, s := range stays {
		color := palette[i%len(palette)]
		markers = append(markers, marker{
			Lat:     s.Location.Lat,
			Lng:     s.Location.Lng,
			Color:   color,
			Badge:   s.Ordinal,
			Tooltip: fmt.Sprintf("Location #%d", s.Ordinal),
			Popup:   popupHTML(s, color, r.cfg.Popup.Fields),
		})
	}

	segments := make([]segment, 0, len(route.Segments))
	for i, seg := range route.Segments {
		segments = append(segments, segment{
			From:  [2]float64{seg.From.Lat, seg.From.Lng},
			To:    [2]float64{seg.To.Lat, seg.To.Lng},
			Mid:   [2]float64{seg.Midpoint.Lat, seg.Midpoint.Lng},
			Label: fmt.Sprintf("%.1f km", seg.DistanceKm),
			Popup: fmt.Sprintf("Segment %d&rarr;%d: %.1f km", i+1, i+2, seg.DistanceKm),
		})
	}

	markersJSON, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("encode markers: %w", err)
	}
	segmentsJSON, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}

	return mapTemplate.Execute(w, pageData{
		Title:        r.cfg.Map.Title,
		TilesURL:     r.cfg.Map.TilesURL,
		Attribution:  r.cfg.Map.Attribution,
		CenterLat:    view.Center.Lat,
		CenterLng:    view.Center.Lng,
		Zoom:         view.Zoom,
		RouteColor:   r.cfg.Route.Color,
		RouteWeight:  r.cfg.Route.Weight,
		RouteOpacity: r.cfg.Route.Opacity,
		Markers:      template.JS(markersJSON),
		Segments:     template.JS(segmentsJSON),
	})
}

// popupHTML lists the stay's coordinates plus any configured detail
// fields present on the stay, in configured order.
func popupHTML(s domain.Stay, color string, fields []config.PopupField) string {
	var b strings.Builder
	b.WriteString("<div style='font-family:Arial;min-width:200px;'>")
	fmt.Fprintf(&b, "<h3 style='color:%s;margin:0 0 8px;'>&#128205; Location #%d</h3>", color, s.Ordinal)
	fmt.Fprintf(&b, "<p><strong>Coords:</strong> %.6f, %.6f</p>", s.Location.Lat, s.Location.Lng)
	for _, f := range fields {
		v, ok := s.Fields[f.Key]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>",
			template.HTMLEscapeString(f.Label), template.HTMLEscapeString(fmt.Sprint(v)))
	}
	b.WriteString("</div>")
	return b.String()
}

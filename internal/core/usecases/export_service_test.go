package usecases_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
	"github.com/rishab9750/map-my-locations/internal/core/usecases"
)

type mockExporter struct {
	exportFn func(w io.Writer, stays []domain.Stay, route domain.Route) error
}

func (m *mockExporter) Export(w io.Writer, stays []domain.Stay, route domain.Route) error {
	if m.exportFn != nil {
		return m.exportFn(w, stays, route)
	}
	_, err := w.Write([]byte("exported"))
	return err
}

func TestExportService_Export(t *testing.T) {
	source := &mockSource{
		staysFn: func(ctx context.Context) ([]domain.Stay, error) { return twoStays(), nil },
	}

	var gotStays int
	var gotTotal float64
	exporter := &mockExporter{
		exportFn: func(w io.Writer, stays []domain.Stay, route domain.Route) error {
			gotStays = len(stays)
			gotTotal = route.TotalKm
			_, err := w.Write([]byte("exported"))
			return err
		},
	}

	out := filepath.Join(t.TempDir(), "stays.geojson")
	svc := usecases.NewExportService(source, exporter)

	if err := svc.Export(context.Background(), out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStays != 2 {
		t.Errorf("expected 2 stays passed to exporter, got %d", gotStays)
	}
	if gotTotal <= 0 {
		t.Errorf("expected route with positive distance, got %f", gotTotal)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if string(data) != "exported" {
		t.Errorf("unexpected artifact content: %q", data)
	}
}

func TestExportService_Export_NoStays(t *testing.T) {
	source := &mockSource{
		staysFn: func(ctx context.Context) ([]domain.Stay, error) { return nil, nil },
	}

	svc := usecases.NewExportService(source, &mockExporter{})
	if err := svc.Export(context.Background(), filepath.Join(t.TempDir(), "out")); err == nil {
		t.Error("expected error for empty stay list")
	}
}

func TestExportService_Export_ExporterError(t *testing.T) {
	source := &mockSource{
		staysFn: func(ctx context.Context) ([]domain.Stay, error) { return twoStays(), nil },
	}
	exporter := &mockExporter{
		exportFn: func(w io.Writer, stays []domain.Stay, route domain.Route) error {
			return errors.New("encoder broke")
		},
	}

	svc := usecases.NewExportService(source, exporter)
	if err := svc.Export(context.Background(), filepath.Join(t.TempDir(), "out")); err == nil {
		t.Error("expected exporter error to propagate")
	}
}

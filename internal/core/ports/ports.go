package ports

import (
	"context"
	"io"

	"github.com/rishab9750/map-my-locations/internal/core/domain"
)

// StaySource extracts stay records from an input document.
type StaySource interface {
	Stays(ctx context.Context) ([]domain.Stay, error)
}

// MapRenderer renders stays and their route into an HTML document.
type MapRenderer interface {
	Render(w io.Writer, stays []domain.Stay, route domain.Route, view domain.View) error
}

// Exporter encodes stays and their route in an interchange format.
type Exporter interface {
	Export(w io.Writer, stays []domain.Stay, route domain.Route) error
}

// Opener opens a rendered artifact for the user.
type Opener interface {
	Open(path string) error
}

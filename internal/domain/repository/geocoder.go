package repository

import (
	"context"

	"github.com/travelmap/internal/domain"
)

// Geocoder is the external geocoding provider used when the bundled
// directory has no answer.
type Geocoder interface {
	// Forward resolves free text to a location; (nil, nil) means the
	// provider found nothing.
	Forward(ctx context.Context, query string) (*domain.ForwardResult, error)

	// Reverse resolves a coordinate pair to a structured address.
	Reverse(ctx context.Context, lat, lon float64) (*domain.Address, error)
}

// DirectoryRepository serves the bundled, immutable place directory.
type DirectoryRepository interface {
	All() []domain.DirectoryEntry
}

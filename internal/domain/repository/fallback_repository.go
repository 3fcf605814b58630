package repository

import (
	"context"

	"github.com/travelmap/internal/domain"
)

// FallbackRepository is the durable local slot holding the last known place
// collection. It is read-only recovery for a failed remote fetch, not a
// write-through mirror: normal writes never touch it, so it may lag the
// backend by design.
type FallbackRepository interface {
	// Load returns the cached collection, or (nil, nil) when the slot is
	// empty.
	Load(ctx context.Context) ([]domain.Place, error)

	// Store overwrites the slot. Only the explicit migration path calls
	// this.
	Store(ctx context.Context, places []domain.Place) error

	// Clear empties the slot.
	Clear(ctx context.Context) error
}

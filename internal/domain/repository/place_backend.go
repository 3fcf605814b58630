package repository

import (
	"context"

	"github.com/travelmap/internal/domain"
)

// PlaceBackend is the remote places API. Every write is remote-first: the
// caller only applies a change locally once the backend has acknowledged it
// and returned the canonical record.
type PlaceBackend interface {
	// FetchAll returns the full collection.
	FetchAll(ctx context.Context) ([]domain.Place, error)

	// Create persists a draft and returns the canonical record carrying
	// the backend-assigned identity.
	Create(ctx context.Context, draft domain.Place) (domain.Place, error)

	// Update applies a partial edit keyed by id.
	Update(ctx context.Context, id string, update domain.PlaceUpdate) (domain.Place, error)

	// MarkVisited transitions the place to visited as of visitDate.
	MarkVisited(ctx context.Context, id string, visitDate domain.CalendarDate, narrative string) (domain.Place, error)

	// MarkPlanned transitions the place back to planned as of plannedDate.
	MarkPlanned(ctx context.Context, id string, plannedDate domain.CalendarDate) (domain.Place, error)

	// Delete removes the place permanently.
	Delete(ctx context.Context, id string) error
}

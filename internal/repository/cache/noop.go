package cache

import (
	"context"

	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
)

// noopFallback stands in when redis is unreachable at startup: the process
// still runs, it just has no recovery data if the backend is also down.
type noopFallback struct{}

func NewNoopFallback() repository.FallbackRepository {
	return noopFallback{}
}

func (noopFallback) Load(context.Context) ([]domain.Place, error) { return nil, nil }
func (noopFallback) Store(context.Context, []domain.Place) error  { return nil }
func (noopFallback) Clear(context.Context) error                  { return nil }

package usecase

import (
	"context"
	"strings"

	"github.com/travelmap/internal/domain"
	apperrors "github.com/travelmap/internal/pkg/errors"
	"go.uber.org/zap"
)

// Lifecycle is the state machine over a place's status, layered on the
// store. Transitions are single-place and monotonic; validation failures
// are checked before any I/O and never reach the backend.
type Lifecycle struct {
	store  *PlaceStore
	logger *zap.Logger
}

func NewLifecycle(store *PlaceStore, logger *zap.Logger) *Lifecycle {
	return &Lifecycle{store: store, logger: logger}
}

// MarkVisited transitions planned -> visited. The user must tell how the
// trip went; an empty narrative is a validation failure.
func (l *Lifecycle) MarkVisited(ctx context.Context, id, narrative string) (domain.Place, error) {
	narrative = strings.TrimSpace(narrative)
	if narrative == "" {
		return domain.Place{}, apperrors.ErrNarrativeRequired
	}
	if _, ok := l.store.Get(id); !ok {
		return domain.Place{}, apperrors.ErrPlaceNotFound
	}

	return l.store.TransitionToVisited(ctx, id, narrative)
}

// MarkPlanned transitions visited -> planned, discarding the visit record.
// Destructive enough to require explicit confirmation.
func (l *Lifecycle) MarkPlanned(ctx context.Context, id string, confirmed bool) (domain.Place, error) {
	if !confirmed {
		return domain.Place{}, apperrors.ErrConfirmationRequired
	}
	if _, ok := l.store.Get(id); !ok {
		return domain.Place{}, apperrors.ErrPlaceNotFound
	}

	return l.store.TransitionToPlanned(ctx, id)
}

// EditDescription edits the base description without touching the status.
// An empty edit is discarded and triggers no write.
func (l *Lifecycle) EditDescription(ctx context.Context, id, text string) (domain.Place, error) {
	text = strings.TrimSpace(text)
	place, ok := l.store.Get(id)
	if !ok {
		return domain.Place{}, apperrors.ErrPlaceNotFound
	}
	if text == "" || text == place.Description {
		l.logger.Debug("Discarding no-op description edit", zap.String("id", id))
		return place, nil
	}

	return l.store.Update(ctx, id, domain.PlaceUpdate{Description: &text})
}

// EditVisitNarrative edits the visit narrative of a visited place. An
// empty edit is discarded; editing a planned place's narrative is invalid
// because the field does not exist in that phase.
func (l *Lifecycle) EditVisitNarrative(ctx context.Context, id, text string) (domain.Place, error) {
	text = strings.TrimSpace(text)
	place, ok := l.store.Get(id)
	if !ok {
		return domain.Place{}, apperrors.ErrPlaceNotFound
	}
	if place.Status != domain.StatusVisited {
		return domain.Place{}, apperrors.ErrInvalidStatus
	}
	if text == "" || text == place.VisitDescription {
		l.logger.Debug("Discarding no-op narrative edit", zap.String("id", id))
		return place, nil
	}

	return l.store.Update(ctx, id, domain.PlaceUpdate{VisitDescription: &text})
}

// Delete removes the place for good once confirmed. No soft-delete, no
// undo.
func (l *Lifecycle) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}
	if _, ok := l.store.Get(id); !ok {
		return apperrors.ErrPlaceNotFound
	}

	return l.store.Delete(ctx, id)
}

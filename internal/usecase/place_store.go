package usecase

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
	apperrors "github.com/travelmap/internal/pkg/errors"
	"go.uber.org/zap"
)

// Stats summarizes the collection for the dashboard.
type Stats struct {
	Total      int `json:"total"`
	Visited    int `json:"visited"`
	Planned    int `json:"planned"`
	Percentage int `json:"percentage"`
}

// PlaceStore owns the authoritative place collection and reconciles three
// tiers: the remote backend, the durable fallback slot, and the in-memory
// snapshot subscribers observe.
//
// Every write is remote-first; the in-memory collection only ever reflects
// states the backend has acknowledged, so the stream never carries a
// partial write. Only the initial fetch degrades silently (to the fallback
// slot, then to empty) - write failures always surface to the caller.
type PlaceStore struct {
	backend  repository.PlaceBackend
	fallback repository.FallbackRepository
	activity *ActivityTracker
	logger   *zap.Logger

	mu      sync.Mutex
	places  []domain.Place
	subs    map[int]chan []domain.Place
	nextSub int
}

func NewPlaceStore(
	backend repository.PlaceBackend,
	fallback repository.FallbackRepository,
	activity *ActivityTracker,
	logger *zap.Logger,
) *PlaceStore {
	return &PlaceStore{
		backend:  backend,
		fallback: fallback,
		activity: activity,
		logger:   logger,
		subs:     make(map[int]chan []domain.Place),
	}
}

// FetchAll replaces the collection with the backend's. A failed fetch is
// never raised: the store recovers from the fallback slot, or degrades to
// an empty collection, and logs the reason. The fallback slot is not
// refreshed on success - it is recovery data, and mirroring every fetch
// into it would let stale local state mask remote data later.
func (s *PlaceStore) FetchAll(ctx context.Context) []domain.Place {
	s.activity.Begin(ActivityLoad)
	defer s.activity.End()

	places, err := s.backend.FetchAll(ctx)
	if err != nil {
		s.logger.Warn("Remote fetch failed, recovering from fallback cache", zap.Error(err))
		return s.recoverFromFallback(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = places
	s.emitLocked()

	s.logger.Info("Place collection fetched", zap.Int("count", len(places)))
	return s.snapshotLocked()
}

func (s *PlaceStore) recoverFromFallback(ctx context.Context) []domain.Place {
	cached, err := s.fallback.Load(ctx)
	if err != nil {
		s.logger.Error("Fallback cache unreadable, degrading to empty collection", zap.Error(err))
		cached = nil
	} else if cached == nil {
		s.logger.Info("Fallback cache empty, degrading to empty collection")
	} else {
		s.logger.Info("Recovered collection from fallback cache", zap.Int("count", len(cached)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = cached
	s.emitLocked()
	return s.snapshotLocked()
}

// Create persists a draft remote-first: nothing is kept locally unless the
// backend acknowledged and returned the canonical record. A draft without
// any identity gets a local one, collision-checked against the collection
// and regenerated on duplicate.
func (s *PlaceStore) Create(ctx context.Context, draft domain.Place) (domain.Place, error) {
	if !draft.Coordinates.Valid() {
		return domain.Place{}, apperrors.ErrInvalidCoordinates
	}
	if draft.Status == "" {
		draft.Status = domain.StatusPlanned
	}
	if !draft.Status.Valid() {
		return domain.Place{}, apperrors.ErrInvalidStatus
	}
	if err := draft.CheckInvariant(); err != nil {
		return domain.Place{}, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}

	if draft.Identity() == "" {
		draft.LocalID = s.newLocalID()
	}

	s.activity.Begin(ActivitySave)
	defer s.activity.End()

	created, err := s.backend.Create(ctx, draft)
	if err != nil {
		s.logger.Error("Create rejected by backend", zap.String("name", draft.Name), zap.Error(err))
		return domain.Place{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = append(s.places, created)
	s.emitLocked()

	s.logger.Info("Place created",
		zap.String("id", created.Identity()),
		zap.String("name", created.Name))
	return created, nil
}

// Update sends a partial edit and, on success, swaps the matching record
// (by either identity) for the backend's canonical one. On failure the
// collection is untouched and the error surfaces.
func (s *PlaceStore) Update(ctx context.Context, id string, update domain.PlaceUpdate) (domain.Place, error) {
	s.activity.Begin(ActivityUpdate)
	defer s.activity.End()

	updated, err := s.backend.Update(ctx, id, update)
	if err != nil {
		s.logger.Error("Update rejected by backend", zap.String("id", id), zap.Error(err))
		return domain.Place{}, err
	}

	s.replace(id, updated)
	return updated, nil
}

// Delete removes the place remotely, then drops the matching record.
func (s *PlaceStore) Delete(ctx context.Context, id string) error {
	s.activity.Begin(ActivityDelete)
	defer s.activity.End()

	if err := s.backend.Delete(ctx, id); err != nil {
		s.logger.Error("Delete rejected by backend", zap.String("id", id), zap.Error(err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.places[:0:0]
	for _, p := range s.places {
		if !p.Matches(id) {
			kept = append(kept, p)
		}
	}
	s.places = kept
	s.emitLocked()

	s.logger.Info("Place deleted", zap.String("id", id))
	return nil
}

// TransitionToVisited marks the place visited as of today's local calendar
// date. The backend swaps the phase fields atomically and returns the
// canonical record.
func (s *PlaceStore) TransitionToVisited(ctx context.Context, id, narrative string) (domain.Place, error) {
	s.activity.Begin(ActivityVisit)
	defer s.activity.End()

	updated, err := s.backend.MarkVisited(ctx, id, domain.Today(), narrative)
	if err != nil {
		s.logger.Error("Visit transition rejected by backend", zap.String("id", id), zap.Error(err))
		return domain.Place{}, err
	}

	s.replace(id, updated)
	s.logger.Info("Place marked as visited", zap.String("id", id))
	return updated, nil
}

// TransitionToPlanned moves the place back to planned as of today,
// dropping the visit record.
func (s *PlaceStore) TransitionToPlanned(ctx context.Context, id string) (domain.Place, error) {
	s.activity.Begin(ActivityPlan)
	defer s.activity.End()

	updated, err := s.backend.MarkPlanned(ctx, id, domain.Today())
	if err != nil {
		s.logger.Error("Plan transition rejected by backend", zap.String("id", id), zap.Error(err))
		return domain.Place{}, err
	}

	s.replace(id, updated)
	s.logger.Info("Place moved back to planned", zap.String("id", id))
	return updated, nil
}

// MigrateLegacy pushes the fallback slot's records to the backend, giving
// each a backend identity, and clears the slot once all of them made it.
// This is the one path that writes the slot's lifecycle.
func (s *PlaceStore) MigrateLegacy(ctx context.Context) ([]domain.Place, error) {
	legacy, err := s.fallback.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(legacy) == 0 {
		return nil, nil
	}

	created := make([]domain.Place, 0, len(legacy))
	for _, p := range legacy {
		draft := p
		draft.BackendID = ""
		draft.LocalID = ""
		record, err := s.Create(ctx, draft)
		if err != nil {
			return created, err
		}
		created = append(created, record)
	}

	if err := s.fallback.Clear(ctx); err != nil {
		// Migration itself succeeded; a stale slot only risks re-migration.
		s.logger.Warn("Failed to clear fallback slot after migration", zap.Error(err))
	}

	s.logger.Info("Legacy places migrated", zap.Int("count", len(created)))
	return created, nil
}

// Snapshot returns a copy of the current collection.
func (s *PlaceStore) Snapshot() []domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get locates a place by identity match.
func (s *PlaceStore) Get(id string) (domain.Place, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.FindByID(s.places, id)
}

// VisitedPlaces filters the current collection; recomputed on demand,
// never cached.
func (s *PlaceStore) VisitedPlaces() []domain.Place {
	return domain.FilterByStatus(s.Snapshot(), domain.StatusVisited)
}

// PlannedPlaces filters the current collection.
func (s *PlaceStore) PlannedPlaces() []domain.Place {
	return domain.FilterByStatus(s.Snapshot(), domain.StatusPlanned)
}

// Stats computes collection counters. Percentage rounds to the nearest
// integer and is 0 for an empty collection.
func (s *PlaceStore) Stats() Stats {
	places := s.Snapshot()

	visited := 0
	for _, p := range places {
		if p.Status == domain.StatusVisited {
			visited++
		}
	}

	stats := Stats{
		Total:   len(places),
		Visited: visited,
		Planned: len(places) - visited,
	}
	if stats.Total > 0 {
		stats.Percentage = int(math.Round(float64(visited) / float64(stats.Total) * 100))
	}
	return stats
}

// Subscribe returns the collection stream. The latest snapshot is
// delivered immediately; a slow consumer only ever misses intermediate
// snapshots, never the latest one.
func (s *PlaceStore) Subscribe() (<-chan []domain.Place, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++

	ch := make(chan []domain.Place, 1)
	ch <- s.snapshotLocked()
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// replace swaps the record matching id for the canonical one and emits.
// An unmatched id means the record vanished between operations; the
// emission is skipped like the collection was never touched.
func (s *PlaceStore) replace(id string, updated domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.places {
		if p.Matches(id) {
			s.places[i] = updated
			s.emitLocked()
			return
		}
	}
	s.logger.Warn("Updated place not present in collection", zap.String("id", id))
}

func (s *PlaceStore) newLocalID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id := uuid.NewString()
		if _, exists := domain.FindByID(s.places, id); !exists {
			return id
		}
	}
}

func (s *PlaceStore) snapshotLocked() []domain.Place {
	out := make([]domain.Place, len(s.places))
	copy(out, s.places)
	return out
}

func (s *PlaceStore) emitLocked() {
	snapshot := s.snapshotLocked()
	for _, ch := range s.subs {
		// latest-wins: drop the undelivered previous snapshot
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

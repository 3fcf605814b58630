package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/travelmap/internal/config"
	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
	apperrors "github.com/travelmap/internal/pkg/errors"
	"github.com/travelmap/internal/pkg/utils"
	"go.uber.org/zap"
)

var (
	visitedRouteStyle = domain.RouteStyle{Color: "#ef4444", Weight: 3, Opacity: 0.7}
	plannedRouteStyle = domain.RouteStyle{Color: "#3b82f6", Weight: 3, Opacity: 0.7, Dashed: true}
)

// MapReconciler keeps a map surface in sync with the place collection.
// Reconciliation is a full teardown and redraw rather than a minimal diff:
// the collection is small, the redraw is idempotent, and it keeps the
// surface from ever showing a marker for a place that no longer exists.
type MapReconciler struct {
	surface repository.MapSurface
	cfg     config.MapConfig
	logger  *zap.Logger

	// schedule defers a callback; swapped for a manual trigger in tests.
	schedule func(d time.Duration, fn func())

	mu       sync.Mutex
	rendered []string
	current  []domain.Place
}

func NewMapReconciler(surface repository.MapSurface, cfg config.MapConfig, logger *zap.Logger) *MapReconciler {
	return &MapReconciler{
		surface: surface,
		cfg:     cfg,
		logger:  logger,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// SetScheduler replaces the popup-delay timer. Tests use this to drive the
// clock by hand.
func (r *MapReconciler) SetScheduler(schedule func(d time.Duration, fn func())) {
	r.schedule = schedule
}

// Run consumes the store's stream until the context ends, reconciling on
// every emission.
func (r *MapReconciler) Run(ctx context.Context, store *PlaceStore) {
	stream, cancel := store.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case places, ok := <-stream:
			if !ok {
				return
			}
			r.Reconcile(places)
		}
	}
}

// Reconcile redraws the whole surface from the given collection: tear down
// every previous marker and route, add one marker per place, draw the
// visited and planned routes, and refit the viewport.
func (r *MapReconciler) Reconcile(places []domain.Place) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.rendered {
		r.surface.RemoveMarker(id)
	}
	r.rendered = r.rendered[:0]
	r.surface.ClearRoutes()

	points := make([]domain.Coordinates, 0, len(places))
	for _, place := range places {
		marker := buildMarker(place)
		r.surface.AddMarker(marker)
		r.rendered = append(r.rendered, marker.ID)
		points = append(points, place.Coordinates)
	}

	// The two routes never share a point: status is mutually exclusive.
	visited := routePoints(places, domain.StatusVisited)
	if len(visited) > 1 {
		r.surface.AddRoute(domain.Route{Points: visited, Style: visitedRouteStyle})
	}
	planned := routePoints(places, domain.StatusPlanned)
	if len(planned) > 1 {
		r.surface.AddRoute(domain.Route{Points: planned, Style: plannedRouteStyle})
	}

	if bounds, ok := domain.BoundsOf(points); ok {
		r.surface.FitBounds(bounds.Pad(r.cfg.BoundsPadding))
	}

	r.current = make([]domain.Place, len(places))
	copy(r.current, places)

	r.logger.Debug("Map reconciled",
		zap.Int("markers", len(places)),
		zap.Int("visited", len(visited)),
		zap.Int("planned", len(planned)),
		zap.Float64("visited_route_km", utils.RouteDistance(visited)))
}

// FocusOnPlace pans the camera to the place and opens its popup once the
// pan animation has had time to settle. Opening immediately would pin the
// popup to a frame the camera is still moving away from, so the open is
// scheduled strictly after the configured delay.
func (r *MapReconciler) FocusOnPlace(id string) error {
	r.mu.Lock()
	place, ok := domain.FindByID(r.current, id)
	r.mu.Unlock()
	if !ok {
		return apperrors.ErrPlaceNotFound
	}

	r.surface.PanTo(place.Coordinates, r.cfg.FocusZoom)

	markerID := place.Identity()
	r.schedule(r.cfg.PopupDelay, func() {
		r.surface.OpenPopup(markerID)
	})

	r.logger.Debug("Focusing place",
		zap.String("id", markerID),
		zap.Duration("popup_delay", r.cfg.PopupDelay))
	return nil
}

// RenderedMarkerIDs returns the ids currently on the surface, in render
// order.
func (r *MapReconciler) RenderedMarkerIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.rendered))
	copy(out, r.rendered)
	return out
}

func buildMarker(place domain.Place) domain.Marker {
	return domain.Marker{
		ID:       place.Identity(),
		Position: place.Coordinates,
		Icon:     domain.IconForStatus(place.Status),
		Popup: domain.Popup{
			Title:       place.Name,
			StatusLabel: statusLabel(place.Status),
			Narrative:   place.Narrative(),
			DateLabel:   dateLabel(place),
		},
	}
}

func statusLabel(status domain.Status) string {
	switch status {
	case domain.StatusVisited:
		return "Visited"
	default:
		return "Planned"
	}
}

// dateLabel renders the status date from its stored components; no
// timestamp parse is involved, so the shown day never shifts with the
// viewer's timezone.
func dateLabel(place domain.Place) string {
	date := place.StatusDate()
	if date == nil {
		return ""
	}
	switch place.Status {
	case domain.StatusVisited:
		return "Visited on " + date.Display()
	default:
		return "Planned for " + date.Display()
	}
}

func routePoints(places []domain.Place, status domain.Status) []domain.Coordinates {
	points := make([]domain.Coordinates, 0, len(places))
	for _, p := range places {
		if p.Status == status {
			points = append(points, p.Coordinates)
		}
	}
	return points
}

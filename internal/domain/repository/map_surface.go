package repository

import "github.com/travelmap/internal/domain"

// MapSurface is the rendered map the reconciler draws on. The surface is a
// black box over the tile provider: it accepts drawing commands and exposes
// nothing back except click events (delivered out of band by the surface
// implementation).
//
// Calls are never concurrent; the reconciler issues them from a single
// goroutine.
type MapSurface interface {
	AddMarker(marker domain.Marker)
	RemoveMarker(id string)
	AddRoute(route domain.Route)
	ClearRoutes()
	FitBounds(bounds domain.Bounds)
	PanTo(center domain.Coordinates, zoom int)
	OpenPopup(markerID string)
}

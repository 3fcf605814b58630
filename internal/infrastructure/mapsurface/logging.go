package mapsurface

import (
	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
	"go.uber.org/zap"
)

// loggingSurface is the headless stand-in for a real map surface: it
// records every drawing command to the log. Useful when the service runs
// without a connected renderer, and as a trace of what a renderer would
// have been told to draw.
type loggingSurface struct {
	logger *zap.Logger
}

func NewLoggingSurface(logger *zap.Logger) repository.MapSurface {
	return &loggingSurface{logger: logger}
}

func (s *loggingSurface) AddMarker(marker domain.Marker) {
	s.logger.Debug("map: add marker",
		zap.String("id", marker.ID),
		zap.String("icon", string(marker.Icon)),
		zap.Float64("lat", marker.Position.Lat),
		zap.Float64("lon", marker.Position.Lon))
}

func (s *loggingSurface) RemoveMarker(id string) {
	s.logger.Debug("map: remove marker", zap.String("id", id))
}

func (s *loggingSurface) AddRoute(route domain.Route) {
	s.logger.Debug("map: add route",
		zap.Int("points", len(route.Points)),
		zap.String("color", route.Style.Color),
		zap.Bool("dashed", route.Style.Dashed))
}

func (s *loggingSurface) ClearRoutes() {
	s.logger.Debug("map: clear routes")
}

func (s *loggingSurface) FitBounds(bounds domain.Bounds) {
	s.logger.Debug("map: fit bounds",
		zap.Float64("min_lat", bounds.MinLat),
		zap.Float64("min_lon", bounds.MinLon),
		zap.Float64("max_lat", bounds.MaxLat),
		zap.Float64("max_lon", bounds.MaxLon))
}

func (s *loggingSurface) PanTo(center domain.Coordinates, zoom int) {
	s.logger.Debug("map: pan",
		zap.Float64("lat", center.Lat),
		zap.Float64("lon", center.Lon),
		zap.Int("zoom", zoom))
}

func (s *loggingSurface) OpenPopup(markerID string) {
	s.logger.Debug("map: open popup", zap.String("marker_id", markerID))
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travelmap/internal/pkg/utils"
	"github.com/travelmap/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler serves collection statistics and the busy indicator.
type StatsHandler struct {
	store    *usecase.PlaceStore
	activity *usecase.ActivityTracker
	logger   *zap.Logger
}

func NewStatsHandler(store *usecase.PlaceStore, activity *usecase.ActivityTracker, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		store:    store,
		activity: activity,
		logger:   logger,
	}
}

func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.store.Stats(), nil)
}

// GetActivity reports whether any operation is in flight, for the global
// loading overlay.
func (h *StatsHandler) GetActivity(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.activity.State(), nil)
}

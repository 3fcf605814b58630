package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travelmap/internal/usecase"
	"github.com/travelmap/internal/usecase/dto"
	apperrors "github.com/travelmap/internal/pkg/errors"
	"github.com/travelmap/internal/pkg/utils"
	"github.com/travelmap/internal/pkg/validator"
	"go.uber.org/zap"
)

// PlaceHandler exposes the place collection and its lifecycle operations.
type PlaceHandler struct {
	store     *usecase.PlaceStore
	lifecycle *usecase.Lifecycle
	logger    *zap.Logger
}

func NewPlaceHandler(store *usecase.PlaceStore, lifecycle *usecase.Lifecycle, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		store:     store,
		lifecycle: lifecycle,
		logger:    logger,
	}
}

// List returns the current collection snapshot. An optional status query
// narrows it to one phase.
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	switch c.Query("status") {
	case "":
		places := h.store.Snapshot()
		return utils.SendSuccess(c, places, &utils.Meta{Total: len(places)})
	case "visited":
		places := h.store.VisitedPlaces()
		return utils.SendSuccess(c, places, &utils.Meta{Total: len(places)})
	case "planned":
		places := h.store.PlannedPlaces()
		return utils.SendSuccess(c, places, &utils.Meta{Total: len(places)})
	default:
		return utils.SendError(c, apperrors.ErrInvalidStatus)
	}
}

// Refresh refetches the collection from the backend, degrading to the
// fallback cache on failure; it cannot fail from the client's view.
func (h *PlaceHandler) Refresh(c *fiber.Ctx) error {
	places := h.store.FetchAll(c.Context())
	return utils.SendSuccess(c, places, &utils.Meta{Total: len(places)})
}

// Create adds a new place.
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		}))
	}

	created, err := h.store.Create(c.Context(), req.ToDraft())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, created, nil)
}

// Update applies a partial edit.
func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	var req dto.UpdatePlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	update := req.ToUpdate()
	if update.Empty() {
		// Nothing to change; echo the current record without a write.
		if place, ok := h.store.Get(id); ok {
			return utils.SendSuccess(c, place, nil)
		}
		return utils.SendError(c, apperrors.ErrPlaceNotFound)
	}

	updated, err := h.store.Update(c.Context(), id, update)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, updated, nil)
}

// Visit transitions a place to visited.
func (h *PlaceHandler) Visit(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.VisitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	place, err := h.lifecycle.MarkVisited(c.Context(), id, req.VisitDescription)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, place, nil)
}

// Plan moves a place back to planned.
func (h *PlaceHandler) Plan(c *fiber.Ctx) error {
	id := c.Params("id")
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}

	place, err := h.lifecycle.MarkPlanned(c.Context(), id, req.Confirmed)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, place, nil)
}

// Delete removes a place; the confirmation travels as a query flag.
func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	confirmed := c.QueryBool("confirmed")

	if err := h.lifecycle.Delete(c.Context(), id, confirmed); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": id}, nil)
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/travelmap/internal/pkg/errors"
	"github.com/travelmap/internal/pkg/utils"
	"github.com/travelmap/internal/pkg/validator"
	"github.com/travelmap/internal/usecase"
	"github.com/travelmap/internal/usecase/dto"
	"go.uber.org/zap"
)

// SearchHandler exposes the geocoding resolution pipeline.
type SearchHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

func NewSearchHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Search resolves a free-text query to a single location.
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	result, err := h.geocodeUC.Search(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.SearchResponse{
		Name:        result.Name,
		Coordinates: result.Coordinates,
	}, nil)
}

// Suggest returns autocomplete candidates from the bundled directory.
func (h *SearchHandler) Suggest(c *fiber.Ctx) error {
	entries := h.geocodeUC.Suggest(c.Query("q"))

	suggestions := make([]dto.Suggestion, 0, len(entries))
	for _, entry := range entries {
		suggestions = append(suggestions, dto.Suggestion{
			Name:                 entry.Name,
			Country:              entry.Country,
			State:                entry.State,
			Category:             entry.Category,
			Coordinates:          entry.Coordinates,
			SuggestedDescription: h.geocodeUC.SuggestDescription(entry, ""),
		})
	}

	return utils.SendSuccess(c, dto.SuggestResponse{Suggestions: suggestions}, &utils.Meta{
		Total: len(suggestions),
	})
}

// ReverseGeocode resolves a map click to a place label.
func (h *SearchHandler) ReverseGeocode(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidCoordinates)
	}

	label, err := h.geocodeUC.ResolveClick(c.Context(), req.Lat, req.Lon)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.ReverseGeocodeResponse{
		Label:    label,
		Resolved: label != "",
	}, nil)
}

package dto

import "github.com/travelmap/internal/domain"

// CreatePlaceRequest is a new place draft. Coordinates arrive as the wire
// tuple [lat, lon]; a missing pair defaults to the map centroid.
type CreatePlaceRequest struct {
	Name        string               `json:"name" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Image       string               `json:"image"`
	Coordinates *domain.Coordinates  `json:"coordinates"`
	Status      domain.Status        `json:"status" validate:"omitempty,oneof=planned visited"`
	PlannedDate *domain.CalendarDate `json:"plannedDate"`
}

// ToDraft builds the domain draft, applying defaults.
func (r CreatePlaceRequest) ToDraft() domain.Place {
	draft := domain.Place{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Coordinates: domain.DefaultCenter,
		Status:      r.Status,
		PlannedDate: r.PlannedDate,
	}
	if r.Coordinates != nil {
		draft.Coordinates = *r.Coordinates
	}
	if draft.Status == "" {
		draft.Status = domain.StatusPlanned
	}
	return draft
}

// UpdatePlaceRequest is a partial field edit; nil fields stay untouched.
type UpdatePlaceRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Image       *string              `json:"image"`
	Coordinates *domain.Coordinates  `json:"coordinates"`
	PlannedDate *domain.CalendarDate `json:"plannedDate"`
}

func (r UpdatePlaceRequest) ToUpdate() domain.PlaceUpdate {
	return domain.PlaceUpdate{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		Coordinates: r.Coordinates,
		PlannedDate: r.PlannedDate,
	}
}

// VisitRequest carries the narrative for a planned -> visited transition.
type VisitRequest struct {
	VisitDescription string `json:"visitDescription" validate:"required"`
}

// PlanRequest confirms a visited -> planned transition.
type PlanRequest struct {
	Confirmed bool `json:"confirmed"`
}

// ReverseGeocodeRequest is a map-click coordinate pair.
type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

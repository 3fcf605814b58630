package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status is the life-phase of a place. The set is closed: every switch
// over it carries a default case so an unknown value from the wire is
// rejected instead of silently passing through.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusVisited Status = "visited"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusVisited:
		return true
	default:
		return false
	}
}

// DefaultCenter is the only coordinate value a place may carry before the
// user has picked a real location.
var DefaultCenter = Coordinates{Lat: -14.235, Lon: -51.9253}

// Coordinates is a latitude/longitude pair. On the wire it is a two-element
// [lat, lon] array, matching the backend's tuple encoding.
type Coordinates struct {
	Lat float64
	Lon float64
}

func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{c.Lat, c.Lon})
}

func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinates must be a [lat, lon] array: %w", err)
	}
	parsed := Coordinates{Lat: pair[0], Lon: pair[1]}
	if !parsed.Valid() {
		return fmt.Errorf("coordinates out of range: %f, %f", parsed.Lat, parsed.Lon)
	}
	*c = parsed
	return nil
}

// Place is the central entity: a named geographic point moving between the
// planned and visited phases.
//
// Identity is dual for migration reasons: BackendID is assigned by the
// remote backend on create, LocalID survives from data created before the
// backend existed. Matching always goes through Matches, never an inline
// field comparison.
type Place struct {
	BackendID        string        `json:"_id,omitempty"`
	LocalID          string        `json:"id,omitempty"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Image            string        `json:"image,omitempty"`
	Coordinates      Coordinates   `json:"coordinates"`
	Status           Status        `json:"status"`
	PlannedDate      *CalendarDate `json:"plannedDate,omitempty"`
	VisitDate        *CalendarDate `json:"visitDate,omitempty"`
	VisitDescription string        `json:"visitDescription,omitempty"`
	CreatedAt        time.Time     `json:"createdAt,omitempty"`
	UpdatedAt        time.Time     `json:"updatedAt,omitempty"`
}

// Identity returns the preferred identifier: backend-assigned when present,
// the legacy local one otherwise.
func (p Place) Identity() string {
	if p.BackendID != "" {
		return p.BackendID
	}
	return p.LocalID
}

// Matches reports whether id refers to this place under either identity.
func (p Place) Matches(id string) bool {
	if id == "" {
		return false
	}
	return p.BackendID == id || p.LocalID == id
}

// Narrative returns the text shown for the place: the visit narrative once
// visited, the base description otherwise or when the narrative is empty.
func (p Place) Narrative() string {
	if p.Status == StatusVisited && p.VisitDescription != "" {
		return p.VisitDescription
	}
	return p.Description
}

// StatusDate returns the calendar date attached to the current status.
func (p Place) StatusDate() *CalendarDate {
	switch p.Status {
	case StatusVisited:
		return p.VisitDate
	case StatusPlanned:
		return p.PlannedDate
	default:
		return nil
	}
}

// MarkVisited moves the place to visited atomically: the planned-phase
// fields are removed in the same step the visited-phase fields are
// installed. An empty narrative falls back to the base description.
func (p *Place) MarkVisited(date CalendarDate, narrative string) {
	if narrative == "" {
		narrative = p.Description
	}
	p.Status = StatusVisited
	p.VisitDate = &date
	p.VisitDescription = narrative
	p.PlannedDate = nil
}

// MarkPlanned moves the place back to planned, dropping the visit record.
func (p *Place) MarkPlanned(date CalendarDate) {
	p.Status = StatusPlanned
	p.PlannedDate = &date
	p.VisitDate = nil
	p.VisitDescription = ""
}

// CheckInvariant verifies the mutual-exclusivity rule: exactly the fields
// of the current status are populated.
func (p Place) CheckInvariant() error {
	if !p.Status.Valid() {
		return fmt.Errorf("place %q: unknown status %q", p.Name, p.Status)
	}
	switch p.Status {
	case StatusPlanned:
		if p.VisitDate != nil || p.VisitDescription != "" {
			return fmt.Errorf("place %q: planned place carries visit fields", p.Name)
		}
	case StatusVisited:
		if p.PlannedDate != nil {
			return fmt.Errorf("place %q: visited place carries a planned date", p.Name)
		}
	}
	return nil
}

// FilterByStatus returns the places with the given status, preserving
// collection order.
func FilterByStatus(places []Place, status Status) []Place {
	filtered := make([]Place, 0, len(places))
	for _, p := range places {
		if p.Status == status {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FindByID locates a place by identity match. Position in the slice is
// never used for lookup because it shifts on every refetch.
func FindByID(places []Place, id string) (Place, bool) {
	for _, p := range places {
		if p.Matches(id) {
			return p, true
		}
	}
	return Place{}, false
}

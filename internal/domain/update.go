package domain

// PlaceUpdate is a partial field edit sent to the backend. Nil fields are
// left untouched; status transitions never go through here (they have
// dedicated backend operations that swap the phase fields atomically).
type PlaceUpdate struct {
	Name             *string       `json:"name,omitempty"`
	Description      *string       `json:"description,omitempty"`
	Image            *string       `json:"image,omitempty"`
	Coordinates      *Coordinates  `json:"coordinates,omitempty"`
	VisitDescription *string       `json:"visitDescription,omitempty"`
	PlannedDate      *CalendarDate `json:"plannedDate,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u PlaceUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Image == nil &&
		u.Coordinates == nil && u.VisitDescription == nil && u.PlannedDate == nil
}

package dto

import "github.com/travelmap/internal/domain"

// SearchResponse is a direct forward-resolution result.
type SearchResponse struct {
	Name        string             `json:"name"`
	Coordinates domain.Coordinates `json:"coordinates"`
}

// Suggestion is one autocomplete candidate, with a ready-made description
// the client may offer when its description field is still empty.
type Suggestion struct {
	Name                 string             `json:"name"`
	Country              string             `json:"country"`
	State                string             `json:"state,omitempty"`
	Category             domain.Category    `json:"category,omitempty"`
	Coordinates          domain.Coordinates `json:"coordinates"`
	SuggestedDescription string             `json:"suggestedDescription"`
}

// SuggestResponse is the autocomplete list.
type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// ReverseGeocodeResponse carries the resolved label; Resolved is false
// when the provider failed and the caller should keep its current name.
type ReverseGeocodeResponse struct {
	Label    string `json:"label,omitempty"`
	Resolved bool   `json:"resolved"`
}

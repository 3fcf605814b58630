package domain

// Category tags a directory entry with the kind of destination it is.
// Closed enumeration: description templates switch over it with a required
// default.
type Category string

const (
	CategoryBeach    Category = "beach"
	CategoryMountain Category = "mountain"
	CategoryHistoric Category = "historic"
	CategoryCultural Category = "cultural"
	CategoryNature   Category = "nature"
	CategoryCity     Category = "city"
)

// DirectoryEntry is one row of the bundled place directory: read-only seed
// data loaded once at startup and used for offline-first search
// suggestions.
type DirectoryEntry struct {
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	State       string      `json:"state,omitempty"`
	Category    Category    `json:"category,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

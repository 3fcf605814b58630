package domain

// ForwardResult is the outcome of resolving free text to a location.
type ForwardResult struct {
	Name        string
	Coordinates Coordinates
}

// Address is a structured reverse-geocoding result. Every field is
// optional; Label picks the most specific one available.
type Address struct {
	City    string `json:"city,omitempty"`
	Town    string `json:"town,omitempty"`
	Village string `json:"village,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// UnknownLocationLabel is used when a reverse lookup yields no usable
// address component at all.
const UnknownLocationLabel = "Unknown location"

// Label returns the human name for the address, preferring the most
// specific populated component.
func (a Address) Label() string {
	for _, candidate := range []string{a.City, a.Town, a.Village, a.State, a.Country} {
		if candidate != "" {
			return candidate
		}
	}
	return UnknownLocationLabel
}

package domain

// MarkerIcon selects one of the two fixed marker variants. The choice is a
// pure function of the place status.
type MarkerIcon string

const (
	IconVisited MarkerIcon = "visited"
	IconPlanned MarkerIcon = "planned"
)

// IconForStatus maps a status to its marker icon.
func IconForStatus(status Status) MarkerIcon {
	switch status {
	case StatusVisited:
		return IconVisited
	default:
		return IconPlanned
	}
}

// Popup is the summary card attached to a marker.
type Popup struct {
	Title       string
	StatusLabel string
	Narrative   string
	DateLabel   string
}

// Marker is one rendered map pin. ID is the place identity so focus and
// popup commands can target it after the collection is refetched.
type Marker struct {
	ID       string
	Position Coordinates
	Icon     MarkerIcon
	Popup    Popup
}

// RouteStyle describes how a polyline is drawn.
type RouteStyle struct {
	Color   string
	Weight  int
	Opacity float64
	Dashed  bool
}

// Route is an ordered polyline through a set of places.
type Route struct {
	Points []Coordinates
	Style  RouteStyle
}

// Bounds is a rectangular viewport in lat/lon space.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// BoundsOf computes the smallest bounds containing all points. The second
// return is false for an empty input.
func BoundsOf(points []Coordinates) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLon: points[0].Lon, MaxLon: points[0].Lon,
	}
	for _, p := range points[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
	}
	return b, true
}

// Pad grows the bounds by ratio of its own span on every side, so a fitted
// viewport leaves breathing room around the outermost markers.
func (b Bounds) Pad(ratio float64) Bounds {
	latPad := (b.MaxLat - b.MinLat) * ratio
	lonPad := (b.MaxLon - b.MinLon) * ratio
	return Bounds{
		MinLat: b.MinLat - latPad,
		MinLon: b.MinLon - lonPad,
		MaxLat: b.MaxLat + latPad,
		MaxLon: b.MaxLon + lonPad,
	}
}

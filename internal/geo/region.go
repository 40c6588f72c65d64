// Package geo computes map viewports from sets of coordinates. All
// functions are pure so the map-rendering concern can be tested on its
// own.
package geo

// Point is a coordinate pair in floating-point degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Region is a map viewport: a center coordinate plus latitude and
// longitude spans.
type Region struct {
	Latitude  float64
	Longitude float64
	LatSpan   float64
	LonSpan   float64
}

const (
	// CloseUpSpan is the span used when centering on a single point.
	CloseUpSpan = 0.01

	// MinSpan is the floor applied to computed spans so nearly
	// coincident points do not produce an over-zoomed viewport.
	MinSpan = 0.01

	// paddingFactor scales the bounding box so markers are not flush
	// with the viewport edge.
	paddingFactor = 1.2
)

// DefaultRegion is the viewport shown when no located items exist.
var DefaultRegion = Region{
	Latitude:  37.78825,
	Longitude: -122.4324,
	LatSpan:   0.0922,
	LonSpan:   0.0421,
}

// ComputeRegion derives a viewport covering every point. With no points
// it returns fallback unchanged; with one point it centers on it at
// CloseUpSpan; otherwise it pads the bounding box and clamps each span
// to MinSpan.
func ComputeRegion(points []Point, fallback Region) Region {
	switch len(points) {
	case 0:
		return fallback
	case 1:
		return Region{
			Latitude:  points[0].Latitude,
			Longitude: points[0].Longitude,
			LatSpan:   CloseUpSpan,
			LonSpan:   CloseUpSpan,
		}
	}

	minLat, maxLat := points[0].Latitude, points[0].Latitude
	minLon, maxLon := points[0].Longitude, points[0].Longitude
	for _, p := range points[1:] {
		minLat = min(minLat, p.Latitude)
		maxLat = max(maxLat, p.Latitude)
		minLon = min(minLon, p.Longitude)
		maxLon = max(maxLon, p.Longitude)
	}

	return Region{
		Latitude:  (minLat + maxLat) / 2,
		Longitude: (minLon + maxLon) / 2,
		LatSpan:   max((maxLat-minLat)*paddingFactor, MinSpan),
		LonSpan:   max((maxLon-minLon)*paddingFactor, MinSpan),
	}
}

// FixRegion wraps a fresh location fix into the viewport used for a
// form's first render.
func FixRegion(p Point) Region {
	return Region{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		LatSpan:   0.01,
		LonSpan:   0.01,
	}
}

// InitialRegion is the close-up viewport for a single saved location,
// nudged upward so the marker sits below any overlaying sheet.
func InitialRegion(p Point) Region {
	return Region{
		Latitude:  p.Latitude - 0.0015,
		Longitude: p.Longitude,
		LatSpan:   0.005,
		LonSpan:   0.005,
	}
}

package ingest

import "strings"

// ExtractDirection reads an explicit turning marker out of course
// classification text. The boolean reports whether a marker was found.
func ExtractDirection(courseClassification string) (Direction, bool) {
	switch {
	case strings.Contains(courseClassification, "左"):
		return DirectionLeft, true
	case strings.Contains(courseClassification, "右"):
		return DirectionRight, true
	}
	return "", false
}

// InferDirection determines the course turning direction. Explicit course
// classification text wins; otherwise the per-venue default applies, with
// distance-specific exceptions (the Niigata 1000m straight). Unrecognized
// venues fall back to a weak distance prior: 2000m and up tends to be a
// left-handed course.
//
// The CSV formats do not reliably encode direction, so graceful
// degradation is preferred over hard failure here.
func InferDirection(courseClassification, venueName string, distance int) Direction {
	if d, ok := ExtractDirection(courseClassification); ok {
		return d
	}

	v, ok := venueTable[VenueShortToFull(venueName)]
	if !ok {
		if distance >= 2000 {
			return DirectionLeft
		}
		return DirectionRight
	}

	if d, ok := v.exceptions[distance]; ok {
		return d
	}
	return v.direction
}

// Package geo holds the coordinate helpers used for map display: bounding
// boxes over route legs and distance lookups along a route polyline.
package geo

import "github.com/99minutos/eld-logs/internal/core/domain"

// ComputeBoundingBox returns the smallest box containing every point.
// ok is false when points is empty.
func ComputeBoundingBox(points []domain.GeoPoint) (box domain.BoundingBox, ok bool) {
	if len(points) == 0 {
		return domain.BoundingBox{}, false
	}

	box = domain.BoundingBox{Southwest: points[0], Northeast: points[0]}
	for _, p := range points[1:] {
		box = Extend(box, p)
	}
	return box, true
}

// Extend grows box just enough to contain p.
func Extend(box domain.BoundingBox, p domain.GeoPoint) domain.BoundingBox {
	box.Southwest.Lat = min(box.Southwest.Lat, p.Lat)
	box.Southwest.Lng = min(box.Southwest.Lng, p.Lng)
	box.Northeast.Lat = max(box.Northeast.Lat, p.Lat)
	box.Northeast.Lng = max(box.Northeast.Lng, p.Lng)
	return box
}

// BoundsOfLegs reduces several independently routed legs at once. It is
// equivalent to ComputeBoundingBox over the concatenation of all legs.
func BoundsOfLegs(legs ...[]domain.GeoPoint) (domain.BoundingBox, bool) {
	var (
		box domain.BoundingBox
		ok  bool
	)
	for _, leg := range legs {
		legBox, legOK := ComputeBoundingBox(leg)
		if !legOK {
			continue
		}
		if !ok {
			box, ok = legBox, true
			continue
		}
		box = MergeBoxes(box, legBox)
	}
	return box, ok
}

// MergeBoxes returns the smallest box containing both a and b.
func MergeBoxes(a, b domain.BoundingBox) domain.BoundingBox {
	return Extend(Extend(a, b.Southwest), b.Northeast)
}

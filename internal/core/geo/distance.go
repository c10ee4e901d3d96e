package geo

import (
	"math"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

const (
	earthRadiusMeters = 6371000
	// MetersPerMile converts route distances for log sheet summaries.
	MetersPerMile = 1609.34

	samePointDegrees = 0.0001
)

// Haversine returns the great-circle distance between a and b in metres.
func Haversine(a, b domain.GeoPoint) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lng - a.Lng)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// PathLength is the summed haversine length of path.
func PathLength(path []domain.GeoPoint) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += Haversine(path[i-1], path[i])
	}
	return total
}

// PointAtDistance walks path and returns the coordinate reached after meters.
// The point is interpolated linearly inside the segment where the target
// falls; targets beyond the end return the last point.
func PointAtDistance(path []domain.GeoPoint, meters float64) (domain.GeoPoint, bool) {
	if len(path) == 0 {
		return domain.GeoPoint{}, false
	}
	if meters <= 0 {
		return path[0], true
	}

	var walked float64
	for i := 1; i < len(path); i++ {
		seg := Haversine(path[i-1], path[i])
		if walked+seg >= meters {
			if seg == 0 {
				return path[i], true
			}
			f := (meters - walked) / seg
			return domain.GeoPoint{
				Lat: path[i-1].Lat + (path[i].Lat-path[i-1].Lat)*f,
				Lng: path[i-1].Lng + (path[i].Lng-path[i-1].Lng)*f,
			}, true
		}
		walked += seg
	}
	return path[len(path)-1], true
}

// SamePoint reports whether a and b are within roughly ten metres of each
// other on both axes.
func SamePoint(a, b domain.GeoPoint) bool {
	return math.Abs(a.Lat-b.Lat) < samePointDegrees && math.Abs(a.Lng-b.Lng) < samePointDegrees
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

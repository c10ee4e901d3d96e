package geo

import (
	"math"
	"testing"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

func pt(lat, lng float64) domain.GeoPoint {
	return domain.GeoPoint{Lat: lat, Lng: lng}
}

// ---------------------------------------------------------------------------
// Bounding box
// ---------------------------------------------------------------------------

func TestComputeBoundingBox_Empty(t *testing.T) {
	if _, ok := ComputeBoundingBox(nil); ok {
		t.Fatalf("expected no box for empty input")
	}
	if _, ok := ComputeBoundingBox([]domain.GeoPoint{}); ok {
		t.Fatalf("expected no box for empty slice")
	}
}

func TestComputeBoundingBox_SinglePoint(t *testing.T) {
	box, ok := ComputeBoundingBox([]domain.GeoPoint{pt(40.0, -75.0)})
	if !ok {
		t.Fatalf("expected a box")
	}
	if box.Southwest != pt(40.0, -75.0) || box.Northeast != pt(40.0, -75.0) {
		t.Fatalf("expected degenerate box at (40,-75), got %+v", box)
	}
}

func TestComputeBoundingBox_ThreePoints(t *testing.T) {
	box, ok := ComputeBoundingBox([]domain.GeoPoint{pt(10, 10), pt(20, 5), pt(15, 25)})
	if !ok {
		t.Fatalf("expected a box")
	}
	if box.Southwest != pt(10, 5) {
		t.Errorf("expected southwest (10,5), got %+v", box.Southwest)
	}
	if box.Northeast != pt(20, 25) {
		t.Errorf("expected northeast (20,25), got %+v", box.Northeast)
	}
}

func inside(b domain.BoundingBox, p domain.GeoPoint) bool {
	return p.Lat >= b.Southwest.Lat && p.Lat <= b.Northeast.Lat &&
		p.Lng >= b.Southwest.Lng && p.Lng <= b.Northeast.Lng
}

func TestComputeBoundingBox_ContainsAllPoints(t *testing.T) {
	points := []domain.GeoPoint{pt(-33.9, 151.2), pt(51.5, -0.12), pt(35.7, 139.7), pt(-22.9, -43.2), pt(51.5, -0.12)}
	box, _ := ComputeBoundingBox(points)
	for _, p := range points {
		if !inside(box, p) {
			t.Errorf("box %+v does not contain %+v", box, p)
		}
	}
	if box.Southwest.Lat > box.Northeast.Lat || box.Southwest.Lng > box.Northeast.Lng {
		t.Errorf("corners out of order: %+v", box)
	}
}

func TestBoundsOfLegs_EqualsConcatenation(t *testing.T) {
	leg1 := []domain.GeoPoint{pt(41.88, -87.63), pt(41.60, -87.30)}
	leg2 := []domain.GeoPoint{pt(41.60, -87.30), pt(39.77, -86.16), pt(38.25, -85.76)}

	merged, ok := BoundsOfLegs(leg1, nil, leg2)
	if !ok {
		t.Fatalf("expected a box")
	}
	concat, _ := ComputeBoundingBox(append(append([]domain.GeoPoint{}, leg1...), leg2...))
	if merged != concat {
		t.Errorf("expected %+v, got %+v", concat, merged)
	}

	swapped, _ := BoundsOfLegs(leg2, leg1)
	if swapped != merged {
		t.Errorf("leg order changed the box: %+v vs %+v", swapped, merged)
	}

	repeated, _ := BoundsOfLegs(leg1, leg2, leg1, leg2)
	if repeated != merged {
		t.Errorf("repeated points changed the box: %+v vs %+v", repeated, merged)
	}
}

func TestBoundsOfLegs_AllEmpty(t *testing.T) {
	if _, ok := BoundsOfLegs(nil, []domain.GeoPoint{}); ok {
		t.Fatalf("expected no box when every leg is empty")
	}
	if _, ok := BoundsOfLegs(); ok {
		t.Fatalf("expected no box without legs")
	}
}

func TestMergeBoxes_Associative(t *testing.T) {
	a, _ := ComputeBoundingBox([]domain.GeoPoint{pt(0, 0), pt(1, 1)})
	b, _ := ComputeBoundingBox([]domain.GeoPoint{pt(-5, 3)})
	c, _ := ComputeBoundingBox([]domain.GeoPoint{pt(2, -8), pt(4, 2)})

	left := MergeBoxes(MergeBoxes(a, b), c)
	right := MergeBoxes(a, MergeBoxes(b, c))
	if left != right {
		t.Fatalf("merge is not associative: %+v vs %+v", left, right)
	}
	if MergeBoxes(a, a) != a {
		t.Fatalf("merge is not idempotent")
	}
}

// ---------------------------------------------------------------------------
// Distance
// ---------------------------------------------------------------------------

func TestHaversine(t *testing.T) {
	if d := Haversine(pt(10, 10), pt(10, 10)); d != 0 {
		t.Errorf("expected 0 for identical points, got %v", d)
	}

	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	d := Haversine(pt(0, 0), pt(1, 0))
	if math.Abs(d-111195) > 1 {
		t.Errorf("expected ~111195 m, got %v", d)
	}

	if math.Abs(Haversine(pt(40, -75), pt(41, -74))-Haversine(pt(41, -74), pt(40, -75))) > 1e-6 {
		t.Errorf("haversine is not symmetric")
	}
}

func TestPointAtDistance(t *testing.T) {
	path := []domain.GeoPoint{pt(0, 0), pt(1, 0), pt(2, 0)}
	leg := Haversine(pt(0, 0), pt(1, 0))

	if _, ok := PointAtDistance(nil, 10); ok {
		t.Fatalf("expected no point on an empty path")
	}

	cases := []struct {
		name   string
		meters float64
		want   domain.GeoPoint
	}{
		{"start", 0, pt(0, 0)},
		{"halfway first leg", leg / 2, pt(0.5, 0)},
		{"vertex", leg, pt(1, 0)},
		{"inside second leg", leg * 1.25, pt(1.25, 0)},
		{"past the end", leg * 10, pt(2, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PointAtDistance(path, tc.meters)
			if !ok {
				t.Fatalf("expected a point")
			}
			if math.Abs(got.Lat-tc.want.Lat) > 1e-9 || math.Abs(got.Lng-tc.want.Lng) > 1e-9 {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPointAtDistance_SinglePoint(t *testing.T) {
	got, ok := PointAtDistance([]domain.GeoPoint{pt(5, 6)}, 1000)
	if !ok || got != pt(5, 6) {
		t.Fatalf("expected the only point, got %+v (ok=%v)", got, ok)
	}
}

func TestSamePoint(t *testing.T) {
	if !SamePoint(pt(40.00001, -75.00001), pt(40, -75)) {
		t.Errorf("expected nearby points to be the same")
	}
	if SamePoint(pt(40.001, -75), pt(40, -75)) {
		t.Errorf("expected distant points to differ")
	}
}

func TestPathLength(t *testing.T) {
	path := []domain.GeoPoint{pt(0, 0), pt(1, 0), pt(2, 0)}
	want := 2 * Haversine(pt(0, 0), pt(1, 0))
	if got := PathLength(path); math.Abs(got-want) > 1e-6 {
		t.Errorf("expected %v, got %v", want, got)
	}
	if PathLength(path[:1]) != 0 {
		t.Errorf("expected zero length for a single point")
	}
}

package eldlog

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/geo"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var start = time.Date(2024, time.January, 1, 6, 0, 0, 0, time.UTC)

func miles(m float64) float64 { return m * geo.MetersPerMile }

func mustPlan(t *testing.T, in TripInput) domain.Trip {
	t.Helper()
	trip, err := Plan(in, PropertyCarrier)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	return trip
}

func statuses(trip domain.Trip) []domain.DutyStatus {
	out := make([]domain.DutyStatus, len(trip.Events))
	for i, e := range trip.Events {
		out[i] = e.Status
	}
	return out
}

func stopTypes(trip domain.Trip) []domain.StopType {
	out := make([]domain.StopType, len(trip.Stops))
	for i, s := range trip.Stops {
		out[i] = s.Type
	}
	return out
}

func closeTo(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func closeDur(a, b time.Duration) bool {
	return (a - b).Abs() < time.Millisecond
}

// ---------------------------------------------------------------------------
// Plan
// ---------------------------------------------------------------------------

func TestPlan_ShortTrip(t *testing.T) {
	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: miles(100), Duration: 2 * time.Hour})

	want := []domain.DutyStatus{domain.StatusOnDuty, domain.StatusDriving, domain.StatusOnDuty}
	got := statuses(trip)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if !closeDur(trip.Events[1].Duration(), 2*time.Hour) {
		t.Errorf("expected a 2h drive, got %v", trip.Events[1].Duration())
	}
	if !closeTo(trip.Events[1].EndDistance, miles(100), 1) {
		t.Errorf("expected drive to cover 100 miles, got %v m", trip.Events[1].EndDistance)
	}

	types := stopTypes(trip)
	if len(types) != 2 || types[0] != domain.StopPickup || types[1] != domain.StopDropoff {
		t.Errorf("unexpected stops: %v", types)
	}
}

func TestPlan_BreakAndShiftRest(t *testing.T) {
	// 600 miles at 50 mph: 8h drive, 30m break, 3h drive, 10h sleeper, 1h drive.
	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: miles(600), Duration: 12 * time.Hour})

	want := []struct {
		status domain.DutyStatus
		dur    time.Duration
	}{
		{domain.StatusOnDuty, time.Hour},
		{domain.StatusDriving, 8 * time.Hour},
		{domain.StatusOffDuty, 30 * time.Minute},
		{domain.StatusDriving, 3 * time.Hour},
		{domain.StatusSleeper, 10 * time.Hour},
		{domain.StatusDriving, time.Hour},
		{domain.StatusOnDuty, time.Hour},
	}
	if len(trip.Events) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), statuses(trip))
	}
	for i, w := range want {
		e := trip.Events[i]
		if e.Status != w.status || !closeDur(e.Duration(), w.dur) {
			t.Errorf("event %d: expected %s for %v, got %s for %v", i, w.status, w.dur, e.Status, e.Duration())
		}
	}

	wantStops := []domain.StopType{domain.StopPickup, domain.StopRestBreak, domain.StopRestShift, domain.StopDropoff}
	gotStops := stopTypes(trip)
	if len(gotStops) != len(wantStops) {
		t.Fatalf("expected stops %v, got %v", wantStops, gotStops)
	}
	for i := range wantStops {
		if gotStops[i] != wantStops[i] {
			t.Errorf("stop %d: expected %s, got %s", i, wantStops[i], gotStops[i])
		}
	}
	if !closeTo(trip.Stops[1].Distance, miles(400), 1) {
		t.Errorf("expected the break at 400 miles, got %v m", trip.Stops[1].Distance)
	}
}

func TestPlan_FuelStop(t *testing.T) {
	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: miles(1200), Duration: 24 * time.Hour})

	var fuel []domain.Stop
	for _, s := range trip.Stops {
		if s.Type == domain.StopFuel {
			fuel = append(fuel, s)
		}
	}
	if len(fuel) != 1 {
		t.Fatalf("expected exactly one fuel stop, got %v", stopTypes(trip))
	}
	if !closeTo(fuel[0].Distance, miles(1000), 200) {
		t.Errorf("expected fuel near 1000 miles, got %v miles", fuel[0].Distance/geo.MetersPerMile)
	}
}

func TestPlan_CycleRestart(t *testing.T) {
	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: miles(100), Duration: 2 * time.Hour, CycleUsedHours: 69.5})

	if len(trip.Events) < 2 {
		t.Fatalf("expected a restart after pickup, got %v", statuses(trip))
	}
	restart := trip.Events[1]
	if restart.Status != domain.StatusOffDuty || !closeDur(restart.Duration(), 34*time.Hour) {
		t.Errorf("expected a 34h off-duty restart, got %s for %v", restart.Status, restart.Duration())
	}
	if trip.Stops[1].Type != domain.StopCycleRestart {
		t.Errorf("expected cycle restart stop, got %v", stopTypes(trip))
	}
}

func TestPlan_ZeroDistance(t *testing.T) {
	for _, in := range []TripInput{
		{Start: start},
		{Start: start, DistanceMeters: miles(50)}, // no duration: speed unknown
	} {
		trip := mustPlan(t, in)
		got := statuses(trip)
		if len(got) != 2 || got[0] != domain.StatusOnDuty || got[1] != domain.StatusOnDuty {
			t.Errorf("expected pickup and dropoff only, got %v", got)
		}
	}
}

func TestPlan_Invalid(t *testing.T) {
	cases := map[string]TripInput{
		"no start":          {DistanceMeters: 10, Duration: time.Hour},
		"negative distance": {Start: start, DistanceMeters: -1, Duration: time.Hour},
		"negative duration": {Start: start, DistanceMeters: 1, Duration: -time.Hour},
		"negative cycle":    {Start: start, CycleUsedHours: -1},
		"cycle over limit":  {Start: start, CycleUsedHours: 71},
		"NaN distance":      {Start: start, DistanceMeters: math.NaN(), Duration: time.Hour},
		"infinite distance": {Start: start, DistanceMeters: math.Inf(1), Duration: time.Hour},
		"NaN cycle":         {Start: start, DistanceMeters: 1, Duration: time.Hour, CycleUsedHours: math.NaN()},
		"infinite cycle":    {Start: start, CycleUsedHours: math.Inf(-1)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Plan(in, PropertyCarrier); !errors.Is(err, domain.ErrInvalidTrip) {
				t.Fatalf("expected ErrInvalidTrip, got %v", err)
			}
		})
	}
}

func TestPlan_RespectsLimits(t *testing.T) {
	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: miles(3000), Duration: 55 * time.Hour, CycleUsedHours: 20})

	var shiftDriving, sinceBreak time.Duration
	for i, e := range trip.Events {
		if i > 0 && !e.Start.Equal(trip.Events[i-1].End) {
			t.Fatalf("event %d does not start where the previous one ended", i)
		}
		switch e.Status {
		case domain.StatusDriving:
			shiftDriving += e.Duration()
			sinceBreak += e.Duration()
		case domain.StatusSleeper:
			shiftDriving, sinceBreak = 0, 0
		case domain.StatusOffDuty:
			sinceBreak = 0
			if e.Duration() >= 34*time.Hour {
				shiftDriving = 0
			}
		}
		if shiftDriving > 11*time.Hour+time.Millisecond {
			t.Fatalf("event %d: %v driving in one shift", i, shiftDriving)
		}
		if sinceBreak > 8*time.Hour+time.Millisecond {
			t.Fatalf("event %d: %v driving without a break", i, sinceBreak)
		}
	}

	last := trip.Events[len(trip.Events)-1]
	if last.Status != domain.StatusOnDuty || trip.Stops[len(trip.Stops)-1].Type != domain.StopDropoff {
		t.Errorf("expected the trip to end with a dropoff")
	}
	if !closeTo(last.EndDistance, miles(3000), 150) {
		t.Errorf("expected ~3000 miles travelled, got %v", last.EndDistance/geo.MetersPerMile)
	}
}

// ---------------------------------------------------------------------------
// SplitDays
// ---------------------------------------------------------------------------

func TestSplitDays_Empty(t *testing.T) {
	if logs := SplitDays(domain.Trip{}, nil); logs != nil {
		t.Fatalf("expected no logs, got %+v", logs)
	}
}

func TestSplitDays_TwoDays(t *testing.T) {
	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: miles(600), Duration: 12 * time.Hour})
	logs := SplitDays(trip, nil)

	if len(logs) != 2 {
		t.Fatalf("expected 2 daily logs, got %d", len(logs))
	}

	first, second := logs[0], logs[1]
	if first.DayNo != 1 || second.DayNo != 2 {
		t.Errorf("unexpected day numbers: %d, %d", first.DayNo, second.DayNo)
	}
	if !first.Date.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected first date: %v", first.Date)
	}

	// Day 1: 06:00 pickup through the sleeper that starts at 18:30.
	if got := first.Summary; got.DriveHours != 11 || got.OnDutyHours != 12 || got.DistanceMiles != 550 {
		t.Errorf("unexpected day 1 summary: %+v", got)
	}
	lastOfDay1 := first.Events[len(first.Events)-1]
	if lastOfDay1.Status != domain.StatusSleeper || !lastOfDay1.End.Equal(second.Date) {
		t.Errorf("expected the sleeper clipped at midnight, got %+v", lastOfDay1)
	}

	// Day 2: remainder of the sleeper, 1h drive, 1h dropoff.
	if got := second.Summary; got.DriveHours != 1 || got.OnDutyHours != 2 || got.DistanceMiles != 50 {
		t.Errorf("unexpected day 2 summary: %+v", got)
	}
	if firstOfDay2 := second.Events[0]; firstOfDay2.Status != domain.StatusSleeper || !firstOfDay2.Start.Equal(second.Date) {
		t.Errorf("expected the sleeper to resume at midnight, got %+v", firstOfDay2)
	}

	if len(first.Stops) != 3 || first.Stops[0].Time != "06:00" || first.Stops[1].Time != "15:00" {
		t.Errorf("unexpected day 1 stops: %+v", first.Stops)
	}
	if len(second.Stops) != 1 || second.Stops[0].Type != domain.StopDropoff {
		t.Errorf("unexpected day 2 stops: %+v", second.Stops)
	}
	for _, s := range first.Stops {
		if s.Coord != nil {
			t.Errorf("expected no coordinates without a route, got %+v", s)
		}
	}
}

func TestSplitDays_StopCoordinates(t *testing.T) {
	route := []domain.GeoPoint{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 10}}
	total := geo.PathLength(route)

	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: total, Duration: 2 * time.Hour})
	logs := SplitDays(trip, route)

	stops := logs[0].Stops
	if len(stops) != 2 {
		t.Fatalf("expected pickup and dropoff, got %+v", stops)
	}
	if stops[0].Coord == nil || *stops[0].Coord != route[0] {
		t.Errorf("expected pickup at route start, got %+v", stops[0].Coord)
	}
	if c := stops[1].Coord; c == nil || !closeTo(c.Lng, 10, 1e-3) {
		t.Errorf("expected dropoff at route end, got %+v", c)
	}
}

func TestSplitDays_StopCoordinatesScaledToRoute(t *testing.T) {
	route := []domain.GeoPoint{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 10}}
	total := geo.PathLength(route)

	// Road distance twice the polyline length: the 8h break falls halfway
	// through the drive and must land halfway along the line.
	trip := mustPlan(t, TripInput{Start: start, DistanceMeters: 2 * total, Duration: 16 * time.Hour})
	logs := SplitDays(trip, route)

	var brk *domain.DayStop
	for i, s := range logs[0].Stops {
		if s.Type == domain.StopRestBreak {
			brk = &logs[0].Stops[i]
		}
	}
	if brk == nil {
		t.Fatalf("expected a 30m break on day 1, got %+v", logs[0].Stops)
	}
	if brk.Coord == nil || !closeTo(brk.Coord.Lng, 5, 1e-3) {
		t.Errorf("expected break at lng 5, got %+v", brk.Coord)
	}

	last := logs[len(logs)-1].Stops
	if c := last[len(last)-1].Coord; c == nil || !closeTo(c.Lng, 10, 1e-3) {
		t.Errorf("expected dropoff at route end, got %+v", c)
	}
}

func TestSplitDays_EventsStayInsideDay(t *testing.T) {
	trip := mustPlan(t, TripInput{Start: start.Add(17 * time.Hour), DistanceMeters: miles(2500), Duration: 45 * time.Hour})
	for _, log := range SplitDays(trip, nil) {
		next := log.Date.AddDate(0, 0, 1)
		for _, e := range log.Events {
			if e.Start.Before(log.Date) || e.End.After(next) {
				t.Errorf("day %d: event %+v escapes [%v, %v)", log.DayNo, e, log.Date, next)
			}
		}
		if log.Summary.DriveHours > 24 || log.Summary.OnDutyHours > 24 {
			t.Errorf("day %d: impossible summary %+v", log.DayNo, log.Summary)
		}
	}
}

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/eldlog"
	"github.com/99minutos/eld-logs/internal/core/geo"
	"github.com/99minutos/eld-logs/internal/core/ports"
)

// TripService turns a routed trip into rendered daily log sheets.
type TripService struct {
	timeline ports.TimelineService
	maps     ports.MapService
	rules    eldlog.Rules
	log      zerolog.Logger
}

func NewTripService(timeline ports.TimelineService, maps ports.MapService, rules eldlog.Rules, log zerolog.Logger) *TripService {
	return &TripService{timeline: timeline, maps: maps, rules: rules, log: log}
}

// Plan simulates the trip under the service's hours-of-service rules, splits
// it into calendar days and renders one grid path per day.
func (s *TripService) Plan(ctx context.Context, in ports.PlanTripInput) (*ports.TripPlan, error) {
	trip, err := eldlog.Plan(eldlog.TripInput{
		Start:          in.Start,
		DistanceMeters: in.DistanceMeters,
		Duration:       in.Duration,
		CycleUsedHours: in.CycleUsedHours,
	}, s.rules)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	logs := eldlog.SplitDays(trip, joinLegs(in.Legs))

	rendered, err := s.timeline.RenderSheets(ctx, in.Frame, logs)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	plan := &ports.TripPlan{
		ID:            uuid.NewString(),
		DistanceMiles: round2(in.DistanceMeters / geo.MetersPerMile),
		DurationHours: round2(in.Duration.Hours()),
		Days:          make([]ports.PlannedDay, len(logs)),
	}
	for i := range logs {
		plan.Days[i] = ports.PlannedDay{Log: logs[i], Path: rendered[i]}
	}
	if box, ok := s.maps.Bounds(in.Legs...); ok {
		plan.Bounds = &box
	}

	s.log.Info().
		Str("trip_id", plan.ID).
		Float64("distance_miles", plan.DistanceMiles).
		Int("days", len(plan.Days)).
		Int("stops", len(trip.Stops)).
		Msg("trip planned")

	return plan, nil
}

// joinLegs concatenates legs into one route. A leg that starts where the
// previous one ended (pickup shared by both legs, or a zero-length leg)
// contributes no duplicate junction point.
func joinLegs(legs [][]domain.GeoPoint) []domain.GeoPoint {
	var route []domain.GeoPoint
	for _, leg := range legs {
		for _, p := range leg {
			if n := len(route); n > 0 && geo.SamePoint(route[n-1], p) {
				continue
			}
			route = append(route, p)
		}
	}
	return route
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

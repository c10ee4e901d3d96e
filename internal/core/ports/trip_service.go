package ports

import (
	"context"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

// PlanTripInput is the DTO passed from the transport layer to TripService.
// Legs hold already-routed geometry (e.g. current→pickup, pickup→dropoff).
type PlanTripInput struct {
	Start          time.Time
	DistanceMeters float64
	Duration       time.Duration
	CycleUsedHours float64
	Legs           [][]domain.GeoPoint
	Frame          timeline.Frame
}

// PlannedDay pairs a log sheet with its rendered grid path.
type PlannedDay struct {
	Log  domain.DailyLog
	Path RenderedDay
}

// TripPlan is returned by TripService.Plan.
type TripPlan struct {
	ID            string
	DistanceMiles float64
	DurationHours float64
	Bounds        *domain.BoundingBox // nil when no geometry was supplied
	Days          []PlannedDay
}

// TripService plans hours-of-service log sheets for a routed trip.
type TripService interface {
	Plan(ctx context.Context, in PlanTripInput) (*TripPlan, error)
}

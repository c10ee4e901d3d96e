package handler

import (
	"fmt"
	"math"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

// --- request → domain ---

// resolveLocation returns the named zone, or fallback when name is empty.
func resolveLocation(name string, fallback *time.Location) (*time.Location, error) {
	if name == "" {
		return fallback, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidTimestamp, name)
	}
	return loc, nil
}

func toFrame(r frameRequest) timeline.Frame {
	return timeline.Frame{Width: r.Width, Height: r.Height}
}

func toDutyEvents(reqs []dutyEventRequest, loc *time.Location) ([]domain.DutyStatusEvent, error) {
	events := make([]domain.DutyStatusEvent, 0, len(reqs))
	for i, r := range reqs {
		status, err := domain.ParseDutyStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		start, err := domain.ParseTimestamp(r.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("events[%d].start: %w", i, err)
		}
		end, err := domain.ParseTimestamp(r.End, loc)
		if err != nil {
			return nil, fmt.Errorf("events[%d].end: %w", i, err)
		}
		events = append(events, domain.DutyStatusEvent{Status: status, Start: start, End: end})
	}
	return events, nil
}

func toPoints(reqs []pointRequest) []domain.GeoPoint {
	points := make([]domain.GeoPoint, len(reqs))
	for i, p := range reqs {
		points[i] = domain.GeoPoint{Lat: p.Lat, Lng: p.Lng}
	}
	return points
}

func toLegs(reqs [][]pointRequest) [][]domain.GeoPoint {
	legs := make([][]domain.GeoPoint, len(reqs))
	for i, leg := range reqs {
		legs[i] = toPoints(leg)
	}
	return legs
}

// toPlanInput sums the routed legs. A missing start means "now" in loc.
func toPlanInput(req tripPlanRequest, loc *time.Location, now time.Time) (ports.PlanTripInput, error) {
	start := now.In(loc)
	if req.Start != "" {
		var err error
		if start, err = domain.ParseTimestamp(req.Start, loc); err != nil {
			return ports.PlanTripInput{}, fmt.Errorf("start: %w", err)
		}
	}

	in := ports.PlanTripInput{
		Start:          start,
		CycleUsedHours: req.CycleUsed,
		Frame:          toFrame(req.frameRequest),
		Legs:           make([][]domain.GeoPoint, len(req.Legs)),
	}

	var seconds float64
	for i, leg := range req.Legs {
		in.DistanceMeters += leg.DistanceMeters
		seconds += leg.DurationSeconds
		in.Legs[i] = toPoints(leg.Geometry)
	}
	if seconds > math.MaxInt64/float64(time.Second) {
		return ports.PlanTripInput{}, fmt.Errorf("%w: duration too large", domain.ErrInvalidTrip)
	}
	in.Duration = time.Duration(seconds * float64(time.Second))

	return in, nil
}

// --- domain → response ---

func toPathResponse(r ports.RenderedDay) timelinePathResponse {
	segments := r.Segments
	if segments == nil {
		segments = []domain.PathSegment{}
	}
	return timelinePathResponse{
		Date:     r.Date.Format(time.DateOnly),
		Width:    r.Frame.Width,
		Height:   r.Frame.Height,
		Segments: segments,
		D:        r.PathData,
		Cached:   r.Cached,
	}
}

func toPlanResponse(p *ports.TripPlan, legs [][]domain.GeoPoint) tripPlanResponse {
	resp := tripPlanResponse{
		ID:            p.ID,
		DistanceMiles: p.DistanceMiles,
		DurationHours: p.DurationHours,
		Bounds:        p.Bounds,
		Legs:          legs,
		Days:          make([]tripDayResponse, len(p.Days)),
	}
	for i, d := range p.Days {
		resp.Days[i] = tripDayResponse{
			DailyLog: d.Log,
			Date:     d.Log.Date.Format(time.DateOnly),
			Path:     toPathResponse(d.Path),
		}
	}
	return resp
}

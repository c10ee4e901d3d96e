package eldlog

import (
	"math"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/geo"
)

// SplitDays slices a trip into calendar-day log sheets in the location of the
// trip's first event. Events crossing midnight are clipped on both sides, and
// driving distance is pro-rated by the clipped time. When route is non-empty,
// stops carry the coordinate reached at their travelled distance, scaled to
// the route's own length.
func SplitDays(trip domain.Trip, route []domain.GeoPoint) []domain.DailyLog {
	if len(trip.Events) == 0 {
		return nil
	}

	tripStart := trip.Events[0].Start
	tripEnd := trip.Events[len(trip.Events)-1].End

	scale := 1.0
	if traveled, length := trip.Events[len(trip.Events)-1].EndDistance, geo.PathLength(route); traveled > 0 && length > 0 {
		scale = length / traveled
	}

	var logs []domain.DailyLog
	for dayStart := domain.Midnight(tripStart); dayStart.Before(tripEnd); dayStart = dayStart.AddDate(0, 0, 1) {
		dayEnd := dayStart.AddDate(0, 0, 1)
		logs = append(logs, sheet(len(logs)+1, dayStart, dayEnd, trip, route, scale))
	}
	return logs
}

func sheet(dayNo int, dayStart, dayEnd time.Time, trip domain.Trip, route []domain.GeoPoint, scale float64) domain.DailyLog {
	log := domain.DailyLog{
		DayNo:  dayNo,
		Date:   dayStart,
		Events: []domain.DutyStatusEvent{},
		Stops:  []domain.DayStop{},
	}

	var driving, onDuty time.Duration
	var meters float64

	for _, e := range trip.Events {
		start := latest(e.Start, dayStart)
		end := earliest(e.End, dayEnd)
		if !start.Before(end) {
			continue
		}
		d := end.Sub(start)

		log.Events = append(log.Events, domain.DutyStatusEvent{Status: e.Status, Start: start, End: end})

		if e.Status == domain.StatusDriving {
			driving += d
			if total := e.Duration(); total > 0 {
				meters += (e.EndDistance - e.StartDistance) * d.Seconds() / total.Seconds()
			}
		}
		if e.Status.OnDuty() {
			onDuty += d
		}
	}

	for _, s := range trip.Stops {
		if s.Time.Before(dayStart) || !s.Time.Before(dayEnd) {
			continue
		}
		stop := domain.DayStop{Type: s.Type, Time: s.Time.Format("15:04")}
		if p, ok := geo.PointAtDistance(route, s.Distance*scale); ok {
			stop.Coord = &p
		}
		log.Stops = append(log.Stops, stop)
	}

	log.Summary = domain.DaySummary{
		DriveHours:    round2(driving.Hours()),
		OnDutyHours:   round2(onDuty.Hours()),
		DistanceMiles: round2(meters / geo.MetersPerMile),
	}
	return log
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Package eldlog simulates a driver's hours-of-service day for a trip and
// slices the result into calendar-day log sheets.
package eldlog

import (
	"fmt"
	"math"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/geo"
)

// Rules are the hours-of-service limits applied by Plan.
type Rules struct {
	MaxDriving   time.Duration // per shift
	ShiftWindow  time.Duration // elapsed time from coming on duty
	CycleLimit   time.Duration
	BreakAfter   time.Duration // cumulative driving before a break is due
	Break        time.Duration
	ShiftRest    time.Duration
	CycleRestart time.Duration

	Pickup   time.Duration
	Dropoff  time.Duration
	FuelStop time.Duration

	FuelEvery        float64 // metres
	ArrivalTolerance float64 // metres
}

// PropertyCarrier is the 70-hour / 8-day property-carrying rule set.
var PropertyCarrier = Rules{
	MaxDriving:   11 * time.Hour,
	ShiftWindow:  14 * time.Hour,
	CycleLimit:   70 * time.Hour,
	BreakAfter:   8 * time.Hour,
	Break:        30 * time.Minute,
	ShiftRest:    10 * time.Hour,
	CycleRestart: 34 * time.Hour,

	Pickup:   time.Hour,
	Dropoff:  time.Hour,
	FuelStop: 30 * time.Minute,

	FuelEvery:        1000 * geo.MetersPerMile,
	ArrivalTolerance: 100,
}

// maxSteps bounds the simulation for absurd inputs (near-zero speeds over
// huge distances).
const maxSteps = 100_000

// TripInput describes a trip whose route has already been computed.
type TripInput struct {
	Start          time.Time
	DistanceMeters float64
	Duration       time.Duration // total route driving time
	CycleUsedHours float64
}

func (in TripInput) validate(rules Rules) error {
	switch {
	case in.Start.IsZero():
		return fmt.Errorf("%w: start time is required", domain.ErrInvalidTrip)
	case !finite(in.DistanceMeters):
		return fmt.Errorf("%w: distance must be a finite number", domain.ErrInvalidTrip)
	case !finite(in.CycleUsedHours):
		return fmt.Errorf("%w: cycle used must be a finite number", domain.ErrInvalidTrip)
	case in.DistanceMeters < 0:
		return fmt.Errorf("%w: negative distance", domain.ErrInvalidTrip)
	case in.Duration < 0:
		return fmt.Errorf("%w: negative duration", domain.ErrInvalidTrip)
	case in.CycleUsedHours < 0 || in.CycleUsedHours > rules.CycleLimit.Hours():
		return fmt.Errorf("%w: cycle used must be between 0 and %g hours", domain.ErrInvalidTrip, rules.CycleLimit.Hours())
	}
	return nil
}

type planner struct {
	trip domain.Trip

	now      time.Time
	traveled float64

	shiftDriving time.Duration
	window       time.Duration
	sinceBreak   time.Duration
	cycle        time.Duration
	sinceFuel    float64
}

// Plan produces the continuous duty-status stream for a trip: pickup, driving
// broken up by breaks, rests, restarts and fuel stops, and finally dropoff.
func Plan(in TripInput, rules Rules) (domain.Trip, error) {
	if err := in.validate(rules); err != nil {
		return domain.Trip{}, err
	}

	p := &planner{
		now:   in.Start,
		cycle: hours(in.CycleUsedHours),
	}

	var speed float64 // m/s
	if in.Duration > 0 {
		speed = in.DistanceMeters / in.Duration.Seconds()
	}
	remaining := in.DistanceMeters

	p.stop(domain.StopPickup)
	p.onDuty(rules.Pickup)

	for steps := 0; speed > 0 && remaining > rules.ArrivalTolerance; steps++ {
		if steps == maxSteps {
			return domain.Trip{}, fmt.Errorf("%w: trip does not converge", domain.ErrInvalidTrip)
		}

		switch {
		case p.cycle >= rules.CycleLimit:
			p.stop(domain.StopCycleRestart)
			p.rest(domain.StatusOffDuty, rules.CycleRestart)
			p.cycle = 0
		case p.shiftDriving >= rules.MaxDriving || p.window >= rules.ShiftWindow:
			p.stop(domain.StopRestShift)
			p.rest(domain.StatusSleeper, rules.ShiftRest)
		case p.sinceBreak >= rules.BreakAfter:
			p.stop(domain.StopRestBreak)
			p.append(domain.StatusOffDuty, rules.Break, 0)
			p.window += rules.Break
			p.sinceBreak = 0
		case p.sinceFuel >= rules.FuelEvery-rules.ArrivalTolerance:
			p.stop(domain.StopFuel)
			p.onDuty(rules.FuelStop)
			p.sinceFuel = 0
		default:
			d := min(
				rules.MaxDriving-p.shiftDriving,
				rules.ShiftWindow-p.window,
				rules.CycleLimit-p.cycle,
				rules.BreakAfter-p.sinceBreak,
				seconds((rules.FuelEvery-p.sinceFuel)/speed),
				seconds(remaining/speed),
			)
			d = max(d, time.Nanosecond)
			meters := d.Seconds() * speed

			p.append(domain.StatusDriving, d, meters)
			p.shiftDriving += d
			p.window += d
			p.sinceBreak += d
			p.cycle += d
			p.sinceFuel += meters
			remaining -= meters
		}
	}

	p.stop(domain.StopDropoff)
	p.onDuty(rules.Dropoff)

	return p.trip, nil
}

func (p *planner) append(status domain.DutyStatus, d time.Duration, meters float64) {
	end := p.now.Add(d)
	p.trip.Events = append(p.trip.Events, domain.TripEvent{
		DutyStatusEvent: domain.DutyStatusEvent{Status: status, Start: p.now, End: end},
		StartDistance:   p.traveled,
		EndDistance:     p.traveled + meters,
	})
	p.now = end
	p.traveled += meters
}

func (p *planner) onDuty(d time.Duration) {
	p.append(domain.StatusOnDuty, d, 0)
	p.window += d
	p.cycle += d
}

// rest takes a shift-resetting rest period.
func (p *planner) rest(status domain.DutyStatus, d time.Duration) {
	p.append(status, d, 0)
	p.shiftDriving = 0
	p.window = 0
	p.sinceBreak = 0
}

func (p *planner) stop(t domain.StopType) {
	p.trip.Stops = append(p.trip.Stops, domain.Stop{Type: t, Time: p.now, Distance: p.traveled})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func seconds(s float64) time.Duration {
	if s >= math.MaxInt64/float64(time.Second) {
		return math.MaxInt64
	}
	return time.Duration(s * float64(time.Second))
}

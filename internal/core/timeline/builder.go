// Package timeline turns a day of duty-status intervals into the step-function
// polyline drawn on an ELD log grid.
//
// Coordinates are frame-relative: x runs from 0 (midnight) to Frame.Width
// (next midnight) and y runs top to bottom, OFF_DUTY on the top line and
// ON_DUTY on the bottom line.
package timeline

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

const secondsPerDay = 86400

// Frame is the drawable area of a log grid, margins excluded.
type Frame struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultFrame matches an 800x200 grid with 100/30/20/30 margins.
var DefaultFrame = Frame{Width: 670, Height: 150}

// Validate rejects frames that cannot hold a path.
func (f Frame) Validate() error {
	if !(f.Width > 0) || !(f.Height > 0) || math.IsInf(f.Width, 0) || math.IsInf(f.Height, 0) {
		return fmt.Errorf("%w: %gx%g", domain.ErrInvalidFrame, f.Width, f.Height)
	}
	return nil
}

// X maps t onto the horizontal axis of the day starting at dayStart. Times
// outside the day clamp to the edges, so an event ending at the following
// midnight lands on the right edge instead of wrapping to x=0.
func (f Frame) X(dayStart, t time.Time) float64 {
	seconds := t.Sub(dayStart).Seconds()
	seconds = max(0, min(secondsPerDay, seconds))
	return seconds * f.Width / secondsPerDay
}

// Y maps a status onto one of the four grid lines.
func (f Frame) Y(s domain.DutyStatus) (float64, error) {
	band := f.Height / 3
	switch s {
	case domain.StatusOffDuty:
		return 0, nil
	case domain.StatusSleeper:
		return band, nil
	case domain.StatusDriving:
		return band * 2, nil
	case domain.StatusOnDuty:
		return f.Height, nil
	}
	return 0, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, s)
}

// BuildPath returns the step path for events on the calendar day of date.
// Midnight is taken in date's location. Events may arrive in any order and
// may overlap; they are drawn in start order without further checks.
func BuildPath(date time.Time, events []domain.DutyStatusEvent, frame Frame) ([]domain.PathSegment, error) {
	if len(events) == 0 {
		return nil, nil
	}

	sorted := SortEvents(events)

	// Resolve every y up front so an unknown status yields no partial path.
	ys := make([]float64, len(sorted))
	for i, e := range sorted {
		y, err := frame.Y(e.Status)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		ys[i] = y
	}

	dayStart := domain.Midnight(date)
	path := make([]domain.PathSegment, 0, 1+2*len(sorted))

	penY := ys[0]
	path = append(path, domain.PathSegment{Op: domain.OpMove, X: frame.X(dayStart, sorted[0].Start), Y: penY})

	for i, e := range sorted {
		y := ys[i]
		if y != penY {
			path = append(path, domain.PathSegment{Op: domain.OpLine, X: frame.X(dayStart, e.Start), Y: y})
		}
		path = append(path, domain.PathSegment{Op: domain.OpLine, X: frame.X(dayStart, e.End), Y: y})
		penY = y
	}

	return path, nil
}

// SortEvents returns a copy of events ordered by start. End and status break
// ties so that every permutation of the same input sorts identically.
func SortEvents(events []domain.DutyStatusEvent) []domain.DutyStatusEvent {
	sorted := slices.Clone(events)
	slices.SortFunc(sorted, func(a, b domain.DutyStatusEvent) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		if c := a.End.Compare(b.End); c != 0 {
			return c
		}
		return cmp.Compare(a.Status, b.Status)
	})
	return sorted
}

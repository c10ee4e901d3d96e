package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DutyStatus is one of the four hours-of-service states of a driver.
// The ordinal fixes the vertical placement on a log grid.
type DutyStatus uint8

const (
	StatusOffDuty DutyStatus = iota
	StatusSleeper
	StatusDriving
	StatusOnDuty
)

var (
	ErrInvalidStatus    = errors.New("invalid duty status")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// String returns the wire name of the status, e.g. "OFF_DUTY".
func (s DutyStatus) String() string {
	switch s {
	case StatusOffDuty:
		return "OFF_DUTY"
	case StatusSleeper:
		return "SLEEPER"
	case StatusDriving:
		return "DRIVING"
	case StatusOnDuty:
		return "ON_DUTY"
	default:
		return fmt.Sprintf("DutyStatus(%d)", uint8(s))
	}
}

// Label is the human-readable grid label ("OFF DUTY", "ON DUTY", ...).
func (s DutyStatus) Label() string {
	return strings.ReplaceAll(s.String(), "_", " ")
}

// Valid reports whether s is one of the four recognised statuses.
func (s DutyStatus) Valid() bool {
	return s <= StatusOnDuty
}

// OnDuty reports whether time spent in s counts towards on-duty hours.
func (s DutyStatus) OnDuty() bool {
	return s == StatusDriving || s == StatusOnDuty
}

// ParseDutyStatus maps a wire name to a DutyStatus.
func ParseDutyStatus(s string) (DutyStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OFF_DUTY":
		return StatusOffDuty, nil
	case "SLEEPER":
		return StatusSleeper, nil
	case "DRIVING":
		return StatusDriving, nil
	case "ON_DUTY":
		return StatusOnDuty, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

func (s DutyStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *DutyStatus) UnmarshalText(b []byte) error {
	v, err := ParseDutyStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DutyStatusEvent is a single interval spent in one duty status.
type DutyStatusEvent struct {
	Status DutyStatus `json:"status"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end"`
}

// Duration is End-Start; negative for inverted input.
func (e DutyStatusEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTimestamp accepts RFC 3339 timestamps and offset-less ISO timestamps.
// Offset-less values are interpreted in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// ParseDate parses a YYYY-MM-DD calendar day as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidTimestamp, s)
	}
	return t, nil
}

// Midnight returns 00:00 of t's calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package domain

import "time"

// StopType labels a stop on a planned trip.
type StopType string

const (
	StopPickup       StopType = "Pickup"
	StopFuel         StopType = "Fuel"
	StopRestBreak    StopType = "Rest (30m)"
	StopRestShift    StopType = "Rest (10h)"
	StopCycleRestart StopType = "Cycle Restart (34h)"
	StopDropoff      StopType = "Dropoff"
)

// Stop is a point in time on the trip where the truck is stationary.
type Stop struct {
	Type     StopType
	Time     time.Time
	Distance float64 // metres from trip start
}

// TripEvent is a duty interval produced by the planner, annotated with the
// distance travelled at both ends.
type TripEvent struct {
	DutyStatusEvent
	StartDistance float64
	EndDistance   float64
}

// Trip is the continuous, day-agnostic event stream for one trip.
type Trip struct {
	Events []TripEvent
	Stops  []Stop
}

// DaySummary aggregates a single log sheet.
type DaySummary struct {
	DriveHours    float64 `json:"drive_hours"`
	OnDutyHours   float64 `json:"on_duty_hours"`
	DistanceMiles float64 `json:"distance_miles"`
}

// DayStop is a stop as shown on a daily log sheet.
type DayStop struct {
	Type  StopType  `json:"type"`
	Time  string    `json:"time"`
	Coord *GeoPoint `json:"coord"`
}

// DailyLog is one calendar-day log sheet.
type DailyLog struct {
	DayNo   int               `json:"day_no"`
	Date    time.Time         `json:"-"`
	Events  []DutyStatusEvent `json:"grid_events"`
	Stops   []DayStop         `json:"stops"`
	Summary DaySummary        `json:"summary"`
}

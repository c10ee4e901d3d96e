package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/99minutos/eld-logs/internal/core/domain"
)

// eventsFile is the on-disk shape read by "eldlogs path". JSON input works
// too since it is valid YAML.
//
//	date: 2024-03-10
//	timezone: America/Chicago
//	events:
//	  - {status: DRIVING, start: 2024-03-10T08:00:00, end: 2024-03-10T12:00:00}
type eventsFile struct {
	Date     string       `yaml:"date"`
	Timezone string       `yaml:"timezone"`
	Events   []eventEntry `yaml:"events"`
}

type eventEntry struct {
	Status string `yaml:"status"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
}

// legsFile is the on-disk shape read by "eldlogs bounds". Points is a
// shorthand for a single leg.
type legsFile struct {
	Points []domain.GeoPoint   `yaml:"points"`
	Legs   [][]domain.GeoPoint `yaml:"legs"`
}

func (f legsFile) all() [][]domain.GeoPoint {
	if len(f.Points) == 0 {
		return f.Legs
	}
	return append([][]domain.GeoPoint{f.Points}, f.Legs...)
}

// readInput loads path, or stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func decodeFile(data []byte, dst any) error {
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

func (f eventsFile) toEvents(loc *time.Location) ([]domain.DutyStatusEvent, error) {
	events := make([]domain.DutyStatusEvent, 0, len(f.Events))
	for i, e := range f.Events {
		status, err := domain.ParseDutyStatus(e.Status)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		start, err := domain.ParseTimestamp(e.Start, loc)
		if err != nil {
			return nil, fmt.Errorf("events[%d].start: %w", i, err)
		}
		end, err := domain.ParseTimestamp(e.End, loc)
		if err != nil {
			return nil, fmt.Errorf("events[%d].end: %w", i, err)
		}
		events = append(events, domain.DutyStatusEvent{Status: status, Start: start, End: end})
	}
	return events, nil
}

// loadLocation resolves the first non-empty zone name, defaulting to UTC.
func loadLocation(names ...string) (*time.Location, error) {
	for _, name := range names {
		if name == "" {
			continue
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("timezone %q: %w", name, err)
		}
		return loc, nil
	}
	return time.UTC, nil
}

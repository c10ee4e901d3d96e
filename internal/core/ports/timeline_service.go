package ports

import (
	"context"
	"time"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

// RenderDayInput carries one day of duty events to draw. A zero Frame selects
// the service default.
type RenderDayInput struct {
	Date   time.Time
	Events []domain.DutyStatusEvent
	Frame  timeline.Frame
}

// RenderedDay is the drawable result for one day.
type RenderedDay struct {
	Date     time.Time
	Frame    timeline.Frame
	Segments []domain.PathSegment
	PathData string
	// Cached is true when the segments came from the render cache.
	Cached bool
}

// TimelineService renders duty-status step paths.
type TimelineService interface {
	RenderDay(ctx context.Context, in RenderDayInput) (*RenderedDay, error)
	// RenderSheets renders every log sheet, preserving order.
	RenderSheets(ctx context.Context, frame timeline.Frame, logs []domain.DailyLog) ([]RenderedDay, error)
	Grid(frame timeline.Frame) timeline.GridLayout
	PurgeCache(ctx context.Context) error
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

const defaultRenderWorkers = 4

// TimelineService renders log-grid paths, consulting an optional cache.
type TimelineService struct {
	cache   ports.RenderCache // nil disables caching
	frame   timeline.Frame
	workers int
	log     zerolog.Logger
}

// NewTimelineService returns a TimelineService. cache may be nil. A zero
// frame falls back to timeline.DefaultFrame.
func NewTimelineService(cache ports.RenderCache, frame timeline.Frame, log zerolog.Logger) *TimelineService {
	if frame == (timeline.Frame{}) {
		frame = timeline.DefaultFrame
	}
	return &TimelineService{cache: cache, frame: frame, workers: defaultRenderWorkers, log: log}
}

// RenderDay builds the step path for one day. Cache failures are logged and
// never fail the render.
func (s *TimelineService) RenderDay(ctx context.Context, in ports.RenderDayInput) (*ports.RenderedDay, error) {
	if in.Frame == (timeline.Frame{}) {
		in.Frame = s.frame
	}
	if err := in.Frame.Validate(); err != nil {
		return nil, err
	}

	day := domain.Midnight(in.Date)
	key := renderKey(in)

	if segments, ok := s.cached(ctx, key); ok {
		return s.result(in, segments, true), nil
	}

	segments, err := timeline.BuildPath(in.Date, in.Events, in.Frame)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", day.Format("2006-01-02"), err)
	}

	s.store(ctx, key, segments)

	s.log.Debug().
		Str("date", day.Format("2006-01-02")).
		Int("events", len(in.Events)).
		Int("segments", len(segments)).
		Msg("timeline rendered")

	return s.result(in, segments, false), nil
}

// RenderSheets renders each log concurrently. The first failure cancels the
// remaining renders.
func (s *TimelineService) RenderSheets(ctx context.Context, frame timeline.Frame, logs []domain.DailyLog) ([]ports.RenderedDay, error) {
	out := make([]ports.RenderedDay, len(logs))

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(s.workers)

	for i, l := range logs {
		p.Go(func(ctx context.Context) error {
			r, err := s.RenderDay(ctx, ports.RenderDayInput{Date: l.Date, Events: l.Events, Frame: frame})
			if err != nil {
				return fmt.Errorf("day %d: %w", l.DayNo, err)
			}
			out[i] = *r
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Grid returns the static grid geometry for frame (or the default frame).
func (s *TimelineService) Grid(frame timeline.Frame) timeline.GridLayout {
	if frame == (timeline.Frame{}) {
		frame = s.frame
	}
	return timeline.Grid(frame)
}

// PurgeCache drops every cached render.
func (s *TimelineService) PurgeCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Purge(ctx); err != nil {
		return fmt.Errorf("purge render cache: %w", err)
	}
	s.log.Info().Msg("render cache purged")
	return nil
}

func (s *TimelineService) cached(ctx context.Context, key string) ([]domain.PathSegment, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("render cache lookup failed, rendering anyway")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var segments []domain.PathSegment
	if err := json.Unmarshal(raw, &segments); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return nil, false
	}
	return segments, true
}

func (s *TimelineService) store(ctx context.Context, key string, segments []domain.PathSegment) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(segments)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode render for cache")
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to write render cache")
	}
}

func (s *TimelineService) result(in ports.RenderDayInput, segments []domain.PathSegment, cached bool) *ports.RenderedDay {
	return &ports.RenderedDay{
		Date:     domain.Midnight(in.Date),
		Frame:    in.Frame,
		Segments: segments,
		PathData: timeline.PathData(segments),
		Cached:   cached,
	}
}

// renderKey digests everything BuildPath depends on. Events are hashed in
// sorted order because the path does not depend on input order.
func renderKey(in ports.RenderDayInput) string {
	h := sha256.New()
	buf := make([]byte, 8)

	write := func(v uint64) {
		binary.BigEndian.PutUint64(buf, v)
		h.Write(buf)
	}

	write(uint64(domain.Midnight(in.Date).UnixNano()))
	write(math.Float64bits(in.Frame.Width))
	write(math.Float64bits(in.Frame.Height))
	for _, e := range timeline.SortEvents(in.Events) {
		write(uint64(e.Status))
		write(uint64(e.Start.UnixNano()))
		write(uint64(e.End.UnixNano()))
	}

	return "v1:" + hex.EncodeToString(h.Sum(nil))
}

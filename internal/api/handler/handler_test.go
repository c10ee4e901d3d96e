package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/eld-logs/internal/api/middleware"
	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

// ---- shared helpers ----

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxClientID, "test-client")
	c.Set(middleware.CtxRole, domain.RoleClient)
	return c, rec
}

func expectHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError %d, got %v", code, err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d (%v)", code, he.Code, he.Message)
	}
}

// ---- stubs ----

type stubTimelineService struct {
	renderFn func(ctx context.Context, in ports.RenderDayInput) (*ports.RenderedDay, error)
	purgeErr error
	purged   bool
}

func (s *stubTimelineService) RenderDay(ctx context.Context, in ports.RenderDayInput) (*ports.RenderedDay, error) {
	return s.renderFn(ctx, in)
}

func (s *stubTimelineService) RenderSheets(context.Context, timeline.Frame, []domain.DailyLog) ([]ports.RenderedDay, error) {
	return nil, errors.New("not used")
}

func (s *stubTimelineService) Grid(frame timeline.Frame) timeline.GridLayout {
	if frame == (timeline.Frame{}) {
		frame = timeline.DefaultFrame
	}
	return timeline.Grid(frame)
}

func (s *stubTimelineService) PurgeCache(context.Context) error {
	s.purged = true
	return s.purgeErr
}

type stubMapService struct {
	gotLegs [][]domain.GeoPoint
}

func (s *stubMapService) Bounds(legs ...[]domain.GeoPoint) (domain.BoundingBox, bool) {
	s.gotLegs = legs
	var all []domain.GeoPoint
	for _, l := range legs {
		all = append(all, l...)
	}
	if len(all) == 0 {
		return domain.BoundingBox{}, false
	}
	box := domain.BoundingBox{Southwest: all[0], Northeast: all[0]}
	for _, p := range all[1:] {
		box.Southwest.Lat = min(box.Southwest.Lat, p.Lat)
		box.Southwest.Lng = min(box.Southwest.Lng, p.Lng)
		box.Northeast.Lat = max(box.Northeast.Lat, p.Lat)
		box.Northeast.Lng = max(box.Northeast.Lng, p.Lng)
	}
	return box, true
}

type stubTripService struct {
	planFn func(ctx context.Context, in ports.PlanTripInput) (*ports.TripPlan, error)
}

func (s *stubTripService) Plan(ctx context.Context, in ports.PlanTripInput) (*ports.TripPlan, error) {
	return s.planFn(ctx, in)
}

type stubAuthService struct {
	issueFn func(ctx context.Context, clientID, secret string) (*ports.TokenResult, error)
}

func (s *stubAuthService) IssueToken(ctx context.Context, clientID, secret string) (*ports.TokenResult, error) {
	return s.issueFn(ctx, clientID, secret)
}

func TestValidator_MessagesUseJSONNames(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&timelinePathRequest{
		Events: []dutyEventRequest{{Status: "NAPPING", Start: "x", End: "y"}},
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	for _, want := range []string{"date is required", "events[0].status must be one of"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestHealth_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "")
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("Liveness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealth_Readiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	c, rec := newContext(http.MethodGet, "/health/ready", "")
	if err := NewReadinessHandler(map[string]DependencyCheck{"redis": ok}).Readiness(c); err != nil {
		t.Fatalf("Readiness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, rec = newContext(http.MethodGet, "/health/ready", "")
	_ = NewReadinessHandler(map[string]DependencyCheck{"redis": down}).Readiness(c)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"degraded"`) || !strings.Contains(rec.Body.String(), "connection refused") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	c, rec = newContext(http.MethodGet, "/health/ready", "")
	_ = NewReadinessHandler(nil).Readiness(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("no checks should be ready, got %d", rec.Code)
	}
}

package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/eld-logs/internal/api/metrics"
	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/ports"
	"github.com/99minutos/eld-logs/internal/core/timeline"
)

// TimelineHandler serves duty-status grid paths.
type TimelineHandler struct {
	service ports.TimelineService
	loc     *time.Location // default timezone for offset-less input
	log     zerolog.Logger
}

func NewTimelineHandler(service ports.TimelineService, loc *time.Location, log zerolog.Logger) *TimelineHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TimelineHandler{service: service, loc: loc, log: log}
}

// Path handles POST /v1/timeline/path.
//
// @Summary      Build the step path for one day of duty-status events
// @Tags         timeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      timelinePathRequest  true  "Day and events"
// @Success      200   {object}  timelinePathResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/timeline/path [post]
func (h *TimelineHandler) Path(c echo.Context) error {
	var req timelinePathRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	loc, err := resolveLocation(req.Timezone, h.loc)
	if err != nil {
		return h.fail(err)
	}
	date, err := domain.ParseDate(req.Date, loc)
	if err != nil {
		return h.fail(err)
	}
	events, err := toDutyEvents(req.Events, loc)
	if err != nil {
		return h.fail(err)
	}

	rendered, err := h.service.RenderDay(c.Request().Context(), ports.RenderDayInput{
		Date:   date,
		Events: events,
		Frame:  toFrame(req.frameRequest),
	})
	if err != nil {
		return h.fail(err)
	}

	recordRender(rendered)
	h.log.Debug().
		Str("request_id", requestID(c)).
		Str("client_id", clientID(c)).
		Str("date", req.Date).
		Bool("cached", rendered.Cached).
		Msg("timeline path served")

	return c.JSON(http.StatusOK, toPathResponse(*rendered))
}

// Grid handles GET /v1/timeline/grid.
//
// @Summary      Static grid geometry (status lines and hour ticks)
// @Tags         timeline
// @Produce      json
// @Security     BearerAuth
// @Param        width   query     number  false  "Frame width"
// @Param        height  query     number  false  "Frame height"
// @Success      200     {object}  timeline.GridLayout
// @Failure      400     {object}  errorResponse
// @Router       /v1/timeline/grid [get]
func (h *TimelineHandler) Grid(c echo.Context) error {
	var frame timeline.Frame
	for name, dst := range map[string]*float64{"width": &frame.Width, "height": &frame.Height} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
		}
		*dst = v
	}

	if frame != (timeline.Frame{}) {
		if err := frame.Validate(); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, h.service.Grid(frame))
}

// PurgeCache handles DELETE /v1/cache (admin only).
//
// @Summary      Purge the render cache
// @Tags         admin
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/cache [delete]
func (h *TimelineHandler) PurgeCache(c echo.Context) error {
	if err := h.service.PurgeCache(c.Request().Context()); err != nil {
		return err
	}
	metrics.CachePurgesTotal.Inc()
	h.log.Info().Str("client_id", clientID(c)).Msg("render cache purged by admin")
	return c.NoContent(http.StatusNoContent)
}

// fail counts the rejection and hands err to the HTTP error handler.
func (h *TimelineHandler) fail(err error) error {
	metrics.TimelineErrorsTotal.WithLabelValues(errorReason(err)).Inc()
	return err
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		return "invalid_status"
	case errors.Is(err, domain.ErrInvalidTimestamp):
		return "invalid_timestamp"
	case errors.Is(err, domain.ErrInvalidFrame):
		return "invalid_frame"
	default:
		return "internal"
	}
}

func recordRender(r *ports.RenderedDay) {
	source := "computed"
	if r.Cached {
		source = "cache"
	}
	metrics.TimelineRendersTotal.WithLabelValues(source).Inc()
	metrics.TimelineSegments.Observe(float64(len(r.Segments)))
}

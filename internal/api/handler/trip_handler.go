package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/eld-logs/internal/api/metrics"
	"github.com/99minutos/eld-logs/internal/core/ports"
)

// TripHandler plans hours-of-service log sheets for routed trips.
type TripHandler struct {
	service ports.TripService
	loc     *time.Location
	now     func() time.Time
	log     zerolog.Logger
}

func NewTripHandler(service ports.TripService, loc *time.Location, log zerolog.Logger) *TripHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TripHandler{service: service, loc: loc, now: time.Now, log: log}
}

// Plan handles POST /v1/trips/plan.
//
// @Summary      Plan daily ELD log sheets for a routed trip
// @Description  Legs are the routed current→pickup and pickup→dropoff legs. Start defaults to now.
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tripPlanRequest  true  "Routed trip"
// @Success      200   {object}  tripPlanResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/trips/plan [post]
func (h *TripHandler) Plan(c echo.Context) error {
	var req tripPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	loc, err := resolveLocation(req.Timezone, h.loc)
	if err != nil {
		return err
	}
	in, err := toPlanInput(req, loc, h.now())
	if err != nil {
		return err
	}

	started := time.Now()
	plan, err := h.service.Plan(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.TripsPlannedTotal.Inc()
	metrics.TripDays.Observe(float64(len(plan.Days)))
	metrics.TripPlanDuration.Observe(time.Since(started).Seconds())

	h.log.Info().
		Str("request_id", requestID(c)).
		Str("client_id", clientID(c)).
		Str("trip_id", plan.ID).
		Int("days", len(plan.Days)).
		Msg("trip plan served")

	return c.JSON(http.StatusOK, toPlanResponse(plan, in.Legs))
}

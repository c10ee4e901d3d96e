package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/eld-logs/internal/api/metrics"
	"github.com/99minutos/eld-logs/internal/core/ports"
)

type MapHandler struct {
	service ports.MapService
}

func NewMapHandler(service ports.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// Bounds handles POST /v1/map/bounds. An input without any point is not an
// error: the response carries "bounds": null and the client skips fitting.
//
// @Summary      Bounding box over one or more route legs
// @Tags         map
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      boundsRequest  true  "Route legs"
// @Success      200   {object}  boundsResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/map/bounds [post]
func (h *MapHandler) Bounds(c echo.Context) error {
	var req boundsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var resp boundsResponse
	if box, ok := h.service.Bounds(toLegs(req.Legs)...); ok {
		resp.Bounds = &box
		metrics.BoundsRequestsTotal.WithLabelValues("box").Inc()
	} else {
		metrics.BoundsRequestsTotal.WithLabelValues("empty").Inc()
	}

	return c.JSON(http.StatusOK, resp)
}

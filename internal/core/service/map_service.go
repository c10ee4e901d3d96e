package service

import (
	"github.com/rs/zerolog"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/core/geo"
)

// MapService computes map viewports.
type MapService struct {
	log zerolog.Logger
}

func NewMapService(log zerolog.Logger) *MapService {
	return &MapService{log: log}
}

// Bounds returns the box enclosing all legs, or ok=false when there are no
// points at all. Callers skip map fitting in that case.
func (s *MapService) Bounds(legs ...[]domain.GeoPoint) (domain.BoundingBox, bool) {
	box, ok := geo.BoundsOfLegs(legs...)
	if !ok {
		s.log.Debug().Int("legs", len(legs)).Msg("no points to bound")
	}
	return box, ok
}

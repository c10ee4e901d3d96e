package ports

import "github.com/99minutos/eld-logs/internal/core/domain"

// MapService computes map viewports for route legs.
type MapService interface {
	// Bounds returns the box enclosing every leg; ok is false when no leg has
	// any point.
	Bounds(legs ...[]domain.GeoPoint) (box domain.BoundingBox, ok bool)
}

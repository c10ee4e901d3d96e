package handler

import "github.com/99minutos/eld-logs/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Shared types ---

type pointRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

type frameRequest struct {
	Width  float64 `json:"width"  validate:"omitempty,gt=0"`
	Height float64 `json:"height" validate:"omitempty,gt=0"`
}

// --- Timeline ---

type dutyEventRequest struct {
	Status string `json:"status" validate:"required,duty_status"`
	Start  string `json:"start"  validate:"required"`
	End    string `json:"end"    validate:"required"`
}

type timelinePathRequest struct {
	frameRequest
	Date     string             `json:"date"     validate:"required"`
	Timezone string             `json:"timezone"`
	Events   []dutyEventRequest `json:"events"   validate:"dive"`
}

type timelinePathResponse struct {
	Date     string               `json:"date"`
	Width    float64              `json:"width"`
	Height   float64              `json:"height"`
	Segments []domain.PathSegment `json:"segments"`
	D        string               `json:"d"`
	Cached   bool                 `json:"cached"`
}

// --- Map ---

type boundsRequest struct {
	Legs [][]pointRequest `json:"legs" validate:"dive,dive"`
}

type boundsResponse struct {
	Bounds *domain.BoundingBox `json:"bounds"`
}

// --- Trips ---

// routeLegRequest is one leg as returned by the routing provider.
type routeLegRequest struct {
	DistanceMeters  float64        `json:"distance_meters"  validate:"gte=0"`
	DurationSeconds float64        `json:"duration_seconds" validate:"gte=0"`
	Geometry        []pointRequest `json:"geometry"         validate:"dive"`
}

type tripPlanRequest struct {
	frameRequest
	Start     string            `json:"start"`
	Timezone  string            `json:"timezone"`
	CycleUsed float64           `json:"cycle_used" validate:"gte=0,lte=70"`
	Legs      []routeLegRequest `json:"legs"       validate:"required,min=1,dive"`
}

type tripDayResponse struct {
	domain.DailyLog
	Date string               `json:"date"`
	Path timelinePathResponse `json:"path"`
}

type tripPlanResponse struct {
	ID            string              `json:"id"`
	DistanceMiles float64             `json:"distance_miles"`
	DurationHours float64             `json:"duration_hours"`
	Bounds        *domain.BoundingBox `json:"bounds"`
	Legs          [][]domain.GeoPoint `json:"legs"`
	Days          []tripDayResponse   `json:"days"`
}

// --- Auth ---

type tokenRequest struct {
	ClientID     string `json:"client_id"     validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
}

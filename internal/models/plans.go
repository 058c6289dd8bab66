package models

// PlanRequest is the caller's route-planning request. PreferredTime and
// MetroLine are optional; a nil PreferredTime ranks plans by earliest
// daytime departure instead of closeness to a target time.
type PlanRequest struct {
	Origin        string    `json:"origin" validate:"required"`
	Destination   string    `json:"destination" validate:"required"`
	PreferredTime *Clock    `json:"preferred_time,omitempty"`
	MaxWaitTime   int       `json:"max_wait_time" validate:"gte=0"`
	MetroLine     MetroLine `json:"metro_line,omitempty" validate:"omitempty,oneof=GREEN BLUE"`
}

// RouteSegment is one leg of a plan: a single trip ridden from a start stop
// to an end stop. Plans currently always hold exactly one segment; the
// planner does not chain transfers.
type RouteSegment struct {
	RouteName       string    `json:"route_name"`
	Direction       Direction `json:"direction"`
	TripID          string    `json:"trip_id"`
	StartStop       string    `json:"start_stop"`
	EndStop         string    `json:"end_stop"`
	DepartureTime   Clock     `json:"departure_time"`
	ArrivalTime     Clock     `json:"arrival_time"`
	DurationMinutes int       `json:"duration_minutes"`
	MetroLine       MetroLine `json:"metro_line,omitempty"`
}

// RoutePlan is a ranked journey suggestion. TotalDuration is journey
// duration plus wait; TotalWaitTime is zero when no preferred time was
// given. Plans are built per query and never persisted.
type RoutePlan struct {
	Origin        string         `json:"origin"`
	Destination   string         `json:"destination"`
	TotalDuration int            `json:"total_duration"`
	Segments      []RouteSegment `json:"segments"`
	TotalWaitTime int            `json:"total_wait_time"`
	Instructions  []string       `json:"instructions"`
	MetroLines    []MetroLine    `json:"metro_lines"`
}

// PlanResponse is the serving layer's envelope for plan-route results.
type PlanResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	RoutePlans []RoutePlan `json:"route_plans"`
}

// StopsResponse is the envelope for stop listing and search endpoints.
type StopsResponse struct {
	Success   bool      `json:"success"`
	Query     string    `json:"query,omitempty"`
	Stops     []string  `json:"stops"`
	Count     int       `json:"count"`
	MetroLine MetroLine `json:"metro_line,omitempty"`
}

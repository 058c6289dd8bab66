package models

import "fmt"

// Direction is the direction of travel a Route serves.
type Direction string

const (
	DirectionForward  Direction = "Forward"
	DirectionBackward Direction = "Backward"
)

// ParseDirection validates a direction value from the schedule dump.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionForward:
		return DirectionForward, nil
	case DirectionBackward:
		return DirectionBackward, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// Stop is a named location with expected arrival and departure times within
// one Trip. Sequence is the stop's 1-based position in its trip and is the
// sole signal for direction-of-travel ordering.
type Stop struct {
	Name          string `json:"name"`
	ArrivalTime   Clock  `json:"arrival_time"`
	DepartureTime Clock  `json:"departure_time"`
	Sequence      int    `json:"sequence"`
}

// Trip is one scheduled run of a Route, visiting an ordered sequence of
// stops. Trips are created once during parsing and immutable thereafter.
type Trip struct {
	TripID    string `json:"trip_id"`
	StartTime Clock  `json:"start_time"`
	Stops     []Stop `json:"stops"`
}

// Route is a numbered bus service with one or more scheduled trips in one
// direction. ShortName encodes line membership by prefix convention.
type Route struct {
	RouteID        string    `json:"route_id"`
	ShortName      string    `json:"short_name"`
	LongName       string    `json:"long_name"`
	Direction      Direction `json:"direction"`
	TotalTrips     int       `json:"total_trips"`
	AverageHeadway int       `json:"average_headway"`
	Trips          []Trip    `json:"trips"`
}

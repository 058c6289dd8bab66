package planner

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"metrobus.islamabad.org/internal/directory"
	"metrobus.islamabad.org/internal/models"
	"metrobus.islamabad.org/internal/schedule"
)

// maxPlans caps how many ranked plans a query returns.
const maxPlans = 5

// referenceClock anchors ranking when no preferred time is given: departures
// are ordered by forward distance from it, a proxy for earliest daytime
// departure.
var referenceClock = models.NewClock(6, 0, 0)

// Planner answers route-planning queries against the loaded schedule. It
// holds read-only collaborators and keeps no state of its own; every query
// is pure in-memory computation.
type Planner struct {
	schedule  *schedule.Manager
	directory *directory.Directory
	logger    *slog.Logger
}

// New creates a Planner over the given schedule and stop directory.
func New(sched *schedule.Manager, dir *directory.Directory, logger *slog.Logger) *Planner {
	return &Planner{
		schedule:  sched,
		directory: dir,
		logger:    logger,
	}
}

// stopMatcher matches trip stop names against a requested stop name. The
// requested name is matched directly and, as a fallback, through the Blue
// Line alias table, since callers may use survey naming.
type stopMatcher struct {
	requested string
	canonical string
}

func (p *Planner) matcherFor(name string) stopMatcher {
	return stopMatcher{
		requested: name,
		canonical: p.directory.MapNameForRoutes(name, models.LineBlue),
	}
}

func (m stopMatcher) matches(stopName string) bool {
	return strings.EqualFold(stopName, m.requested) || strings.EqualFold(stopName, m.canonical)
}

// tripScore is the tie-broken score used to pick the best trip of a route.
// Lower wins; primary first, then duration; ties keep the first trip
// evaluated.
type tripScore struct {
	primary  int
	duration int
}

func (s tripScore) betterThan(other tripScore) bool {
	if s.primary != other.primary {
		return s.primary < other.primary
	}
	return s.duration < other.duration
}

// tripSelection is a trip of a route carrying both endpoints in order.
type tripSelection struct {
	trip        models.Trip
	originStop  models.Stop
	destStop    models.Stop
	journeyTime int
}

// endpointsInTrip finds the origin and destination stops within a single
// trip and reports whether the origin precedes the destination there.
// Sequence comparison never crosses trips.
func endpointsInTrip(trip models.Trip, origin, dest stopMatcher) (models.Stop, models.Stop, bool) {
	var originStop, destStop *models.Stop
	for i := range trip.Stops {
		stop := &trip.Stops[i]
		switch {
		case origin.matches(stop.Name):
			originStop = stop
		case dest.matches(stop.Name):
			destStop = stop
		}
	}
	if originStop == nil || destStop == nil || originStop.Sequence >= destStop.Sequence {
		return models.Stop{}, models.Stop{}, false
	}
	return *originStop, *destStop, true
}

// routeConnects reports whether any trip of the route visits the origin
// before the destination. The scan stops at the first qualifying trip.
func routeConnects(route *models.Route, origin, dest stopMatcher) bool {
	for _, trip := range route.Trips {
		if _, _, ok := endpointsInTrip(trip, origin, dest); ok {
			return true
		}
	}
	return false
}

// bestTrip selects the trip of a route minimizing the scoring tuple: with a
// preferred time, circular closeness of departure to that time, then journey
// duration; without one, forward distance of departure from the 06:00
// reference, then journey duration.
func bestTrip(route *models.Route, origin, dest stopMatcher, preferred *models.Clock) (tripSelection, bool) {
	var best tripSelection
	bestScore := tripScore{primary: -1}
	found := false

	for _, trip := range route.Trips {
		originStop, destStop, ok := endpointsInTrip(trip, origin, dest)
		if !ok {
			continue
		}

		journey := originStop.DepartureTime.MinutesForwardTo(destStop.ArrivalTime)

		var score tripScore
		if preferred != nil {
			score = tripScore{
				primary:  preferred.CircularMinutesTo(originStop.DepartureTime),
				duration: journey,
			}
		} else {
			score = tripScore{
				primary:  referenceClock.MinutesForwardTo(originStop.DepartureTime),
				duration: journey,
			}
		}

		if !found || score.betterThan(bestScore) {
			found = true
			bestScore = score
			best = tripSelection{
				trip:        trip,
				originStop:  originStop,
				destStop:    destStop,
				journeyTime: journey,
			}
		}
	}

	return best, found
}

// Plan finds single-route connections from origin to destination and returns
// up to five ranked plans. Unknown stops and missing connections yield an
// empty result, never an error.
func (p *Planner) Plan(req models.PlanRequest) ([]models.RoutePlan, error) {
	routes, err := p.schedule.Routes()
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}

	origin := p.matcherFor(req.Origin)
	dest := p.matcherFor(req.Destination)

	var plans []models.RoutePlan
	for _, routeKey := range sortedKeys(routes) {
		route := routes[routeKey]

		if req.MetroLine != "" && models.ClassifyRoute(route.ShortName) != req.MetroLine {
			continue
		}
		if !routeConnects(route, origin, dest) {
			continue
		}

		selection, ok := bestTrip(route, origin, dest, req.PreferredTime)
		if !ok {
			continue
		}
		plans = append(plans, p.assemblePlan(req, route, selection))
	}

	if req.PreferredTime != nil {
		sort.SliceStable(plans, func(i, j int) bool {
			if plans[i].TotalWaitTime != plans[j].TotalWaitTime {
				return plans[i].TotalWaitTime < plans[j].TotalWaitTime
			}
			return plans[i].Segments[0].DurationMinutes < plans[j].Segments[0].DurationMinutes
		})
	} else {
		sort.SliceStable(plans, func(i, j int) bool {
			return plans[i].TotalDuration < plans[j].TotalDuration
		})
	}

	if len(plans) > maxPlans {
		plans = plans[:maxPlans]
	}

	if p.logger != nil {
		p.logger.Debug("planned route",
			"origin", req.Origin, "destination", req.Destination, "plans", len(plans))
	}
	return plans, nil
}

// assemblePlan builds one RoutePlan from the chosen trip and endpoints.
func (p *Planner) assemblePlan(req models.PlanRequest, route *models.Route, sel tripSelection) models.RoutePlan {
	line := models.ClassifyRoute(route.ShortName)

	segment := models.RouteSegment{
		RouteName:       route.ShortName,
		Direction:       route.Direction,
		TripID:          sel.trip.TripID,
		StartStop:       sel.originStop.Name,
		EndStop:         sel.destStop.Name,
		DepartureTime:   sel.originStop.DepartureTime,
		ArrivalTime:     sel.destStop.ArrivalTime,
		DurationMinutes: sel.journeyTime,
	}
	if line != models.LineUnknown {
		segment.MetroLine = line
	}

	waitTime := 0
	if req.PreferredTime != nil {
		waitTime = req.PreferredTime.CircularMinutesTo(sel.originStop.DepartureTime)
	}

	instructions := []string{
		fmt.Sprintf("Take %s (%s) from %s", route.ShortName, route.LongName, sel.originStop.Name),
		fmt.Sprintf("Departure time: %s", sel.originStop.DepartureTime.ShortString()),
		fmt.Sprintf("Arrive at %s at %s", sel.destStop.Name, sel.destStop.ArrivalTime.ShortString()),
		fmt.Sprintf("Journey duration: %d minutes", sel.journeyTime),
	}

	linesUsed := []models.MetroLine{}
	if line != models.LineUnknown {
		linesUsed = append(linesUsed, line)
	}

	return models.RoutePlan{
		Origin:        req.Origin,
		Destination:   req.Destination,
		TotalDuration: sel.journeyTime + waitTime,
		Segments:      []models.RouteSegment{segment},
		TotalWaitTime: waitTime,
		Instructions:  instructions,
		MetroLines:    linesUsed,
	}
}

// sortedKeys returns the route keys in deterministic order so that repeated
// queries against an unchanged schedule rank identically.
func sortedKeys(routes map[string]*models.Route) []string {
	keys := make([]string, 0, len(routes))
	for key := range routes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package schedule

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"metrobus.islamabad.org/internal/models"
)

// RawRouteBlock is one route's portion of the schedule dump: a flat list of
// text lines containing labeled header fragments followed by trip and stop
// records. The "lines" field name is part of the document contract.
type RawRouteBlock struct {
	Lines []string `json:"lines"`
}

var (
	// A trip boundary is "<digits>-<digits> HH:MM:SS".
	tripBoundaryPattern = regexp.MustCompile(`^\d+-\d+\s+\d{2}:\d{2}:\d{2}`)
	wallClockPattern    = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

// routeInfo holds the labeled header fields of one route block.
type routeInfo struct {
	routeID        string
	shortName      string
	longName       string
	direction      string
	totalTrips     int
	averageHeadway int
	found          bool
}

// extractRouteInfo scans a route block for labeled header fragments. Fields
// are located by substring label, not by position: each label's value is
// whatever follows the last occurrence of the label text on its line. The
// exact label strings are a contract with the schedule dump and must not be
// normalized.
func extractRouteInfo(lines []string) (routeInfo, error) {
	info := routeInfo{averageHeadway: 60}

	for _, line := range lines {
		switch {
		case strings.Contains(line, "Route ID"):
			info.routeID = valueAfterLabel(line, "Route ID")
			info.found = true
		case strings.Contains(line, "Short Name"):
			info.shortName = valueAfterLabel(line, "Short Name")
			info.found = true
		case strings.Contains(line, "Long Name"):
			info.longName = valueAfterLabel(line, "Long Name")
			info.found = true
		case strings.Contains(line, "Direction"):
			info.direction = valueAfterLabel(line, "Direction")
			info.found = true
		case strings.Contains(line, "Total Trips"):
			n, err := strconv.Atoi(valueAfterLabel(line, "Total Trips"))
			if err != nil {
				return info, fmt.Errorf("parsing total trips: %w", err)
			}
			info.totalTrips = n
			info.found = true
		case strings.Contains(line, "Average Headway"):
			n, err := strconv.Atoi(valueAfterLabel(line, "Average Headway (min)"))
			if err != nil {
				return info, fmt.Errorf("parsing average headway: %w", err)
			}
			info.averageHeadway = n
			info.found = true
		}
	}

	if !info.found {
		return info, fmt.Errorf("no route header fields present")
	}
	return info, nil
}

func valueAfterLabel(line, label string) string {
	idx := strings.LastIndex(line, label)
	if idx < 0 {
		return strings.TrimSpace(line)
	}
	return strings.TrimSpace(line[idx+len(label):])
}

// tripScanState tags the two states of the trip extraction loop.
type tripScanState int

const (
	awaitingTripHeader tripScanState = iota
	readingStops
)

// extractTrips walks the route block's lines as a two-state machine. A trip
// boundary line opens a new trip; every following line whose last two
// whitespace tokens are both well-formed HH:MM:SS times is a stop record,
// and anything else (including the optional column header line) is ignored.
// Stop sequence numbers are reassigned 1-based in acceptance order,
// regardless of any ordering hints in the source. Trips with no accepted
// stops are dropped.
func extractTrips(lines []string) []models.Trip {
	var trips []models.Trip
	var current models.Trip
	state := awaitingTripHeader

	flush := func() {
		if state == readingStops && len(current.Stops) > 0 {
			trips = append(trips, current)
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if tripBoundaryPattern.MatchString(line) {
			flush()
			parts := strings.Fields(line)
			current = models.Trip{
				TripID:    parts[0],
				StartTime: models.ParseClock(parts[1]),
			}
			state = readingStops
			continue
		}

		if state != readingStops {
			continue
		}

		if stop, ok := parseStopRecord(line, len(current.Stops)+1); ok {
			current.Stops = append(current.Stops, stop)
		}
	}
	flush()

	return trips
}

// parseStopRecord splits a candidate line on whitespace and accepts it as a
// stop record iff its last two tokens are both HH:MM:SS times. The leading
// tokens, rejoined with single spaces, form the stop name.
func parseStopRecord(line string, sequence int) (models.Stop, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return models.Stop{}, false
	}

	arrival, departure := parts[len(parts)-2], parts[len(parts)-1]
	if !wallClockPattern.MatchString(arrival) || !wallClockPattern.MatchString(departure) {
		return models.Stop{}, false
	}

	return models.Stop{
		Name:          strings.Join(parts[:len(parts)-2], " "),
		ArrivalTime:   models.ParseClock(arrival),
		DepartureTime: models.ParseClock(departure),
		Sequence:      sequence,
	}, true
}

// parseRoute builds a Route from one raw block. A missing or unparseable
// header makes the whole route unusable.
func parseRoute(block RawRouteBlock) (*models.Route, error) {
	info, err := extractRouteInfo(block.Lines)
	if err != nil {
		return nil, err
	}

	direction := models.DirectionForward
	if info.direction != "" {
		direction, err = models.ParseDirection(info.direction)
		if err != nil {
			return nil, err
		}
	}

	return &models.Route{
		RouteID:        info.routeID,
		ShortName:      info.shortName,
		LongName:       info.longName,
		Direction:      direction,
		TotalTrips:     info.totalTrips,
		AverageHeadway: info.averageHeadway,
		Trips:          extractTrips(block.Lines),
	}, nil
}

// ParseDocument parses every route block in a schedule document. Malformed
// routes are logged and skipped rather than aborting the load; the result is
// whatever parsed successfully.
func ParseDocument(blocks map[string]RawRouteBlock, logger *slog.Logger) map[string]*models.Route {
	routes := make(map[string]*models.Route, len(blocks))

	for routeKey, block := range blocks {
		route, err := parseRoute(block)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping malformed route", "route_key", routeKey, "error", err)
			}
			continue
		}
		routes[routeKey] = route
		if logger != nil {
			logger.Debug("loaded route", "route_key", routeKey, "trips", len(route.Trips))
		}
	}

	return routes
}

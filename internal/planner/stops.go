package planner

import (
	"sort"
	"strings"

	"metrobus.islamabad.org/internal/models"
)

// searchResultCap limits substring matches returned by SearchStops.
const searchResultCap = 10

// AllStops returns the sorted set of stop names, optionally restricted to
// routes classified to the given line. The filtered set is re-derived from
// the route map on every call rather than cached per line.
func (p *Planner) AllStops(line models.MetroLine) ([]string, error) {
	if line == "" {
		return p.schedule.AllStops()
	}

	routes, err := p.schedule.Routes()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, route := range routes {
		if models.ClassifyRoute(route.ShortName) != line {
			continue
		}
		for _, trip := range route.Trips {
			for _, stop := range trip.Stops {
				seen[stop.Name] = struct{}{}
			}
		}
	}

	stops := make([]string, 0, len(seen))
	for name := range seen {
		stops = append(stops, name)
	}
	sort.Strings(stops)
	return stops, nil
}

// SearchStops returns stops matching the query: exact case-insensitive
// matches first, then substring matches capped at searchResultCap.
func (p *Planner) SearchStops(query string, line models.MetroLine) ([]string, error) {
	all, err := p.AllStops(line)
	if err != nil {
		return nil, err
	}

	queryLower := strings.ToLower(query)
	var exact, partial []string
	for _, name := range all {
		nameLower := strings.ToLower(name)
		switch {
		case nameLower == queryLower:
			exact = append(exact, name)
		case strings.Contains(nameLower, queryLower):
			partial = append(partial, name)
		}
	}

	if len(partial) > searchResultCap {
		partial = partial[:searchResultCap]
	}
	return append(exact, partial...), nil
}

// LineInfo derives a line's metadata with its stop count from classified
// routes. Unknown codes report false.
func (p *Planner) LineInfo(line models.MetroLine) (models.LineInfo, bool, error) {
	stops, err := p.AllStops(line)
	if err != nil {
		return models.LineInfo{}, false, err
	}
	info, ok := models.NewLineInfo(line, len(stops))
	return info, ok, nil
}

package schedule

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bluele/gcache"

	"metrobus.islamabad.org/internal/models"
)

// routesCacheKey is the single slot under which the parsed route map lives.
const routesCacheKey = "routes"

// Manager owns the parsed schedule. The route map is built lazily on first
// access and memoized for the process lifetime; planning queries only ever
// read it. Reload evicts the cached map so the next access re-reads the
// source.
type Manager struct {
	source string
	logger *slog.Logger
	cache  gcache.Cache
}

// NewManager creates a Manager reading the schedule document at the given
// path. The document is not touched until the first Routes call.
func NewManager(source string, logger *slog.Logger) *Manager {
	m := &Manager{
		source: source,
		logger: logger,
	}

	m.cache = gcache.New(1).
		LRU().
		LoaderFunc(func(interface{}) (interface{}, error) {
			return m.loadRoutes()
		}).
		Build()

	return m
}

// loadRoutes reads and parses the schedule document from disk.
func (m *Manager) loadRoutes() (map[string]*models.Route, error) {
	data, err := os.ReadFile(m.source)
	if err != nil {
		return nil, fmt.Errorf("reading schedule document: %w", err)
	}

	var blocks map[string]RawRouteBlock
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, fmt.Errorf("decoding schedule document: %w", err)
	}

	routes := ParseDocument(blocks, m.logger)
	if m.logger != nil {
		m.logger.Info("schedule loaded", "source", m.source, "routes", len(routes))
	}
	return routes, nil
}

// Routes returns the memoized route map keyed by opaque route key. Repeated
// calls return the same map instance until Reload. Concurrent first-time
// loads at worst duplicate work; the result is deterministic from identical
// input.
func (m *Manager) Routes() (map[string]*models.Route, error) {
	v, err := m.cache.Get(routesCacheKey)
	if err != nil {
		return nil, err
	}
	return v.(map[string]*models.Route), nil
}

// Reload drops the cached route map. The next Routes call re-reads the
// source document.
func (m *Manager) Reload() {
	m.cache.Remove(routesCacheKey)
}

// AllStops returns the sorted set of unique stop names across every trip of
// every route.
func (m *Manager) AllStops() ([]string, error) {
	routes, err := m.Routes()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, route := range routes {
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

// LogStatistics logs route and trip counts for the loaded schedule.
func (m *Manager) LogStatistics() {
	routes, err := m.Routes()
	if err != nil {
		if m.logger != nil {
			m.logger.Error("failed to load schedule for statistics", "error", err)
		}
		return
	}

	totalTrips := 0
	for _, route := range routes {
		totalTrips += len(route.Trips)
	}

	if m.logger != nil {
		m.logger.Info("schedule statistics", "routes", len(routes), "trips", totalTrips)
	}
}

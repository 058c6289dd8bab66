package directory

import (
	"sort"
	"strings"

	"metrobus.islamabad.org/internal/models"
)

// searchResultCap limits the number of substring matches a search returns.
const searchResultCap = 10

// lineNames maps a line code to its display name.
var lineNames = map[models.MetroLine]string{
	models.LineGreen: "Green Line",
	models.LineBlue:  "Blue Line",
}

// Directory is the deduplicated set of stations across both lines. It is
// built once from per-line station records and read-only afterwards; reload
// is a new constructor call, never in-place mutation.
type Directory struct {
	stations map[string]*models.Station
}

// New builds a Directory by merging per-line station record sets in order.
// A station name present in more than one set becomes a single interchange
// station with a composite line code.
func New(recordSets ...LineRecords) *Directory {
	d := &Directory{
		stations: make(map[string]*models.Station),
	}
	for _, set := range recordSets {
		for _, station := range set.Stations {
			d.merge(station, set.Line)
		}
	}
	return d
}

// merge inserts a station or, if the name is already present under another
// line, folds the new line into the existing entry. Folding checks tag
// membership first so merging the same pair twice never duplicates a tag.
func (d *Directory) merge(station models.Station, line models.MetroLine) {
	if station.LineCode == "" {
		station.LineCode = string(line)
	}
	if station.LineName == "" {
		station.LineName = lineNames[line]
	}

	existing, ok := d.stations[station.Name]
	if !ok {
		s := station
		d.stations[station.Name] = &s
		return
	}

	if !hasLineTag(existing.LineCode, string(line)) {
		existing.LineCode = existing.LineCode + "/" + string(line)
		existing.IsInterchange = true
	}
}

// hasLineTag reports whether the "/"-joined composite already carries the
// given line tag.
func hasLineTag(composite, tag string) bool {
	for _, part := range strings.Split(composite, "/") {
		if part == tag {
			return true
		}
	}
	return false
}

// AllStops returns station names, sorted, optionally restricted to stations
// served by the given line. Interchange stations appear in every line they
// serve.
func (d *Directory) AllStops(line models.MetroLine) []string {
	var names []string
	for name, station := range d.stations {
		if line != "" && !hasLineTag(station.LineCode, string(line)) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search returns stops matching the query: exact case-insensitive matches
// first, then substring matches capped at searchResultCap.
func (d *Directory) Search(query string, line models.MetroLine) []string {
	all := d.AllStops(line)
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
	return append(exact, partial...)
}

// Station returns the record for the given station name, or nil.
func (d *Directory) Station(name string) *models.Station {
	return d.stations[name]
}

// IsInterchange reports whether the named station is served by more than one
// line.
func (d *Directory) IsInterchange(name string) bool {
	station := d.stations[name]
	return station != nil && station.IsInterchange
}

// MapNameForRoutes translates a survey station name into the schedule's
// naming so it can be matched against trip stops. Only Blue Line names in
// the fixed alias table translate; everything else passes through.
func (d *Directory) MapNameForRoutes(name string, line models.MetroLine) string {
	if line == models.LineBlue {
		if mapped, ok := blueLineAliases[name]; ok {
			return mapped
		}
	}
	return name
}

// MapNameForDisplay translates a schedule stop name back into the survey
// naming for display. The inverse of MapNameForRoutes.
func (d *Directory) MapNameForDisplay(name string, line models.MetroLine) string {
	if line == models.LineBlue {
		if mapped, ok := blueLineReverseAliases[name]; ok {
			return mapped
		}
	}
	return name
}

// Lines returns the line codes the directory knows about.
func (d *Directory) Lines() []models.MetroLine {
	return []models.MetroLine{models.LineGreen, models.LineBlue}
}

package models

import "strings"

// MetroLine identifies one of the two top-level services a Route belongs to.
type MetroLine string

const (
	LineGreen   MetroLine = "GREEN"
	LineBlue    MetroLine = "BLUE"
	LineUnknown MetroLine = "UNKNOWN"
)

// Route short-name prefixes encoding line membership. GREEN must be checked
// first: its prefix shares a stem with BLUE's.
const (
	greenRoutePrefix = "FRG-"
	blueRoutePrefix  = "FR-"
)

// ClassifyRoute maps a route short name to the metro line it serves.
// Classification is purely prefix-based and case-sensitive; anything outside
// the two conventions is LineUnknown and is excluded from line-filtered
// queries.
func ClassifyRoute(routeShortName string) MetroLine {
	switch {
	case strings.HasPrefix(routeShortName, greenRoutePrefix):
		return LineGreen
	case strings.HasPrefix(routeShortName, blueRoutePrefix):
		return LineBlue
	default:
		return LineUnknown
	}
}

// ParseMetroLine validates a line code supplied by a caller.
func ParseMetroLine(s string) (MetroLine, bool) {
	switch MetroLine(strings.ToUpper(s)) {
	case LineGreen:
		return LineGreen, true
	case LineBlue:
		return LineBlue, true
	default:
		return LineUnknown, false
	}
}

// LineInfo describes a metro line for the lines endpoints.
type LineInfo struct {
	LineCode   MetroLine `json:"line_code"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	ThemeColor string    `json:"theme_color"`
	TotalStops int       `json:"total_stops"`
}

// NewLineInfo creates the fixed metadata for a line with the given stop
// count. Colors follow the public branding of the two services.
func NewLineInfo(line MetroLine, totalStops int) (LineInfo, bool) {
	switch line {
	case LineGreen:
		return LineInfo{
			LineCode:   LineGreen,
			Name:       "Green Line",
			Color:      "#22c55e",
			ThemeColor: "green",
			TotalStops: totalStops,
		}, true
	case LineBlue:
		return LineInfo{
			LineCode:   LineBlue,
			Name:       "Blue Line",
			Color:      "#3b82f6",
			ThemeColor: "blue",
			TotalStops: totalStops,
		}, true
	default:
		return LineInfo{}, false
	}
}

package restapi

import (
	"net/http"

	"metrobus.islamabad.org/internal/models"
	"metrobus.islamabad.org/internal/utils"
)

// parseLineParam reads the optional metro_line query parameter. The second
// return is false when a value was supplied but is not a known line.
func parseLineParam(r *http.Request) (models.MetroLine, bool) {
	raw := r.URL.Query().Get("metro_line")
	if raw == "" {
		return "", true
	}
	line, ok := models.ParseMetroLine(raw)
	return line, ok
}

func (api *RestAPI) stopsHandler(w http.ResponseWriter, r *http.Request) {
	line, ok := parseLineParam(r)
	if !ok {
		api.validationErrorResponse(w, r, map[string][]string{
			"metro_line": {"Invalid field value for field \"metro_line\"."},
		})
		return
	}

	stops, err := api.Planner.AllStops(line)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendJSON(w, r, http.StatusOK, models.StopsResponse{
		Success:   true,
		Stops:     stops,
		Count:     len(stops),
		MetroLine: line,
	})
}

func (api *RestAPI) searchStopsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if err := utils.ValidateQuery(query); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"query": {err.Error()},
		})
		return
	}

	line, ok := parseLineParam(r)
	if !ok {
		api.validationErrorResponse(w, r, map[string][]string{
			"metro_line": {"Invalid field value for field \"metro_line\"."},
		})
		return
	}

	stops, err := api.Planner.SearchStops(query, line)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendJSON(w, r, http.StatusOK, models.StopsResponse{
		Success:   true,
		Query:     query,
		Stops:     stops,
		Count:     len(stops),
		MetroLine: line,
	})
}

package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrobus.islamabad.org/internal/logging"
	"metrobus.islamabad.org/internal/models"
)

// getStopsResponse fetches an endpoint returning the stops payload shape.
func getStopsResponse(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.StopsResponse) {
	t.Helper()

	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "http_response_body")

	var response models.StopsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return resp, response
}

func TestStopsHandler(t *testing.T) {
	api := createTestApi(t)

	resp, response := getStopsResponse(t, api, "/api/metro/stops?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, response.Success)
	assert.Equal(t, 7, response.Count)
	assert.Contains(t, response.Stops, "Faizabad")
	assert.Contains(t, response.Stops, "Gulberg")
}

func TestStopsHandlerLineFilter(t *testing.T) {
	api := createTestApi(t)

	resp, response := getStopsResponse(t, api, "/api/metro/stops?key=TEST&metro_line=GREEN")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.LineGreen, response.MetroLine)
	assert.Equal(t, []string{"Faizabad", "Parade Ground", "Secretariat", "Shakarparian"}, response.Stops)
}

func TestStopsHandlerUnknownLine(t *testing.T) {
	api := createTestApi(t)

	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/metro/stops?key=TEST&metro_line=RED")
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "http_response_body")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchStopsHandler(t *testing.T) {
	api := createTestApi(t)

	resp, response := getStopsResponse(t, api, "/api/metro/search-stops?key=TEST&query=faizabad")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, response.Success)
	assert.Equal(t, "faizabad", response.Query)
	require.NotEmpty(t, response.Stops)
	assert.Equal(t, "Faizabad", response.Stops[0])
}

func TestSearchStopsHandlerShortQuery(t *testing.T) {
	api := createTestApi(t)

	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/metro/search-stops?key=TEST&query=f")
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "http_response_body")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStopsHandlerRequiresAPIKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/stops")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"metrobus.islamabad.org/internal/app"
	"metrobus.islamabad.org/internal/directory"
	"metrobus.islamabad.org/internal/logging"
	"metrobus.islamabad.org/internal/models"
	"metrobus.islamabad.org/internal/planner"
	"metrobus.islamabad.org/internal/schedule"
)

// createTestApi creates a RestAPI instance backed by the testdata fixtures.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)

	scheduleManager := schedule.NewManager(
		filepath.Join("..", "..", "testdata", "schedule.json"), logger)
	dir := directory.LoadDirectory(logger, map[models.MetroLine]string{
		models.LineGreen: filepath.Join("..", "..", "testdata", "green_stations.json"),
		models.LineBlue:  filepath.Join("..", "..", "testdata", "blue_stations.json"),
	})

	application := &app.Application{
		Config: app.Config{
			Env:          "test",
			ApiKeys:      []string{"TEST"},
			RateLimit:    -1,
			SchedulePath: filepath.Join("..", "..", "testdata", "schedule.json"),
		},
		Logger:    logger,
		Schedule:  scheduleManager,
		Directory: dir,
		Planner:   planner.New(scheduleManager, dir, logger),
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a GET request to the
// endpoint, and returns the response and decoded envelope.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	server := httptest.NewServer(api.Router())
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// postJSON posts a JSON body to the endpoint and decodes the reply into out.
func postJSON(t *testing.T, api *RestAPI, endpoint string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	server := httptest.NewServer(api.Router())
	defer server.Close()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(server.URL+endpoint, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "http_response_body")

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

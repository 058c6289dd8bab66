package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrobus.islamabad.org/internal/logging"
)

func TestRootHandler(t *testing.T) {
	api := createTestApi(t)

	server := httptest.NewServer(api.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "http_response_body")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "Metro Bus Route Planner API is running!", payload["message"])
}

func TestHealthHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/health")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", entry["status"])
	assert.Equal(t, "metro-route-planner", entry["service"])

	_, err := time.Parse(time.RFC3339, entry["timestamp"].(string))
	assert.NoError(t, err)
}

package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrobus.islamabad.org/internal/models"
)

func TestPlanRouteHandler(t *testing.T) {
	api := createTestApi(t)

	var response models.PlanResponse
	resp := postJSON(t, api, "/api/metro/plan-route?key=TEST", map[string]interface{}{
		"origin":      "Secretariat",
		"destination": "Faizabad",
	}, &response)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, response.Success)
	assert.Equal(t, "Found 1 route(s) from Secretariat to Faizabad", response.Message)
	require.Len(t, response.RoutePlans, 1)

	plan := response.RoutePlans[0]
	require.Len(t, plan.Segments, 1)
	assert.Equal(t, "FRG-10", plan.Segments[0].RouteName)
	assert.Len(t, plan.Instructions, 4)
}

func TestPlanRouteHandlerWithPreferredTime(t *testing.T) {
	api := createTestApi(t)

	var response models.PlanResponse
	resp := postJSON(t, api, "/api/metro/plan-route?key=TEST", map[string]interface{}{
		"origin":         "Secretariat",
		"destination":    "Faizabad",
		"preferred_time": "08:00:00",
	}, &response)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, response.RoutePlans, 1)

	// The 08:12 departure is closer to 08:00 than 07:02.
	plan := response.RoutePlans[0]
	assert.Equal(t, "101-2", plan.Segments[0].TripID)
	assert.Equal(t, 12, plan.TotalWaitTime)
}

func TestPlanRouteHandlerNoConnection(t *testing.T) {
	api := createTestApi(t)

	var response models.PlanResponse
	resp := postJSON(t, api, "/api/metro/plan-route?key=TEST", map[string]interface{}{
		"origin":      "Nowhere",
		"destination": "Faizabad",
	}, &response)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, response.Success)
	assert.Empty(t, response.RoutePlans)
	assert.Contains(t, response.Message, "No routes found")
}

func TestPlanRouteHandlerValidation(t *testing.T) {
	api := createTestApi(t)

	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	resp := postJSON(t, api, "/api/metro/plan-route?key=TEST", map[string]interface{}{
		"origin": "Secretariat",
	}, &response)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, response.FieldErrors, "Destination")
}

func TestPlanRouteHandlerRejectsUnknownLine(t *testing.T) {
	api := createTestApi(t)

	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	resp := postJSON(t, api, "/api/metro/plan-route?key=TEST", map[string]interface{}{
		"origin":      "Secretariat",
		"destination": "Faizabad",
		"metro_line":  "RED",
	}, &response)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, response.FieldErrors, "MetroLine")
}

func TestPlanRouteHandlerRequiresAPIKey(t *testing.T) {
	api := createTestApi(t)

	var response models.ResponseModel
	resp := postJSON(t, api, "/api/metro/plan-route", map[string]interface{}{
		"origin":      "Secretariat",
		"destination": "Faizabad",
	}, &response)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", response.Text)
}

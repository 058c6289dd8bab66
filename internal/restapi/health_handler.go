package restapi

import (
	"net/http"
	"time"

	"metrobus.islamabad.org/internal/models"
)

func (api *RestAPI) rootHandler(w http.ResponseWriter, r *http.Request) {
	api.sendJSON(w, r, http.StatusOK, map[string]string{
		"message": "Metro Bus Route Planner API is running!",
		"version": "1.0.0",
		"status":  "healthy",
	})
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewEntryResponse(map[string]string{
		"status":    "healthy",
		"service":   "metro-route-planner",
		"timestamp": time.Now().Format(time.RFC3339),
	})
	api.sendResponse(w, r, response)
}

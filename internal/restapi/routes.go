package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// Router builds the API router. Health and metrics endpoints are open;
// everything under /api/metro requires a valid API key.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()

	router.Handler(http.MethodGet, "/", http.HandlerFunc(api.rootHandler))
	router.Handler(http.MethodGet, "/health", http.HandlerFunc(api.healthHandler))
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.Handler(http.MethodPost, "/api/metro/plan-route", validateAPIKey(api, api.planRouteHandler))
	router.Handler(http.MethodGet, "/api/metro/stops", validateAPIKey(api, api.stopsHandler))
	router.Handler(http.MethodGet, "/api/metro/search-stops", validateAPIKey(api, api.searchStopsHandler))
	router.Handler(http.MethodGet, "/api/metro/lines", validateAPIKey(api, api.linesHandler))
	router.Handler(http.MethodGet, "/api/metro/line/:code", validateAPIKey(api, api.lineHandler))
	router.Handler(http.MethodGet, "/api/metro/stations/:name", validateAPIKey(api, api.stationHandler))

	return router
}

// Handler wraps the router with the full middleware chain.
func (api *RestAPI) Handler() http.Handler {
	var handler http.Handler = api.Router()
	handler = api.rateLimiter(handler)
	handler = NewMetricsMiddleware()(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = applyGzipMiddleware(handler)
	handler = securityHeaders(handler)
	return handler
}

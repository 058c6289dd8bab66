package restapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"metrobus.islamabad.org/internal/app"
)

type RestAPI struct {
	*app.Application
	validate    *validator.Validate
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with its request validator and
// rate limiter initialized.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		validate:    validator.New(),
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: Config{ApiKeys: []string{"alpha", "beta"}},
	}

	assert.False(t, app.IsInvalidAPIKey("alpha"))
	assert.False(t, app.IsInvalidAPIKey("beta"))
	assert.True(t, app.IsInvalidAPIKey("gamma"))
	assert.True(t, app.IsInvalidAPIKey(""))
}

func TestRequestHasInvalidAPIKey(t *testing.T) {
	app := &Application{
		Config: Config{ApiKeys: []string{"alpha"}},
	}

	r := httptest.NewRequest("GET", "/api/metro/stops?key=alpha", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/metro/stops?key=wrong", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/metro/stops", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}

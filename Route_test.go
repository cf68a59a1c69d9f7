package rroute_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
)

func TestRouteValues(t *testing.T) {
	uri, err := rroute.NewUri("/users/{id}")
	assert.Nil(t, err)

	route := rroute.NewRoute("users.show", "GET", uri, map[string]any{"auth": true})
	assert.Equal(t, "users.show", route.Name())
	assert.Equal(t, "GET", route.Method())
	assert.Equal(t, "GET:/users/{id}", route.Signature())
	assert.Equal(t, true, route.Extra()["auth"])
}

func TestRouteRewrites(t *testing.T) {
	uri, err := rroute.NewUri("/users/{id}")
	assert.Nil(t, err)
	route := rroute.NewRoute("users.show", "GET", uri, nil)

	prefixed, err := route.WithUriPrefix("/api")
	assert.Nil(t, err)
	assert.Equal(t, "GET:/api/users/{id}", prefixed.Signature())

	tagged := route.WithExtra(map[string]any{"tier": "gold"})
	assert.Equal(t, "gold", tagged.Extra()["tier"])

	// rewrites never touch the original
	assert.Equal(t, "GET:/users/{id}", route.Signature())
	assert.True(t, route.Extra() == nil)
	assert.Equal(t, "users.show", prefixed.Name())
}

package rroute_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
)

func TestRouterMiddleware(t *testing.T) {
	r := rroute.NewRouter()
	r.Use(rroute.WithRouteConfig(rroute.RouteConfig{
		Prefix: "/app",
		Extra:  map[string]any{"tier": "default", "public": true},
	}))

	route, err := r.Get("home", "/")
	assert.Nil(t, err)

	// the stored route carries the rewrites
	assert.Equal(t, "/app", route.Uri().Template())
	assert.Equal(t, "default", route.Extra()["tier"])
	assert.Equal(t, true, route.Extra()["public"])
	assert.Equal(t, route, r.Route("home"))
}

func TestRouteConfigExtraMerge(t *testing.T) {
	mw := rroute.WithRouteConfig(rroute.RouteConfig{
		Extra: map[string]any{"tier": "default", "zone": "eu"},
	})

	uri, err := rroute.NewUri("/users/{id}")
	assert.Nil(t, err)

	// route-local keys win over configured defaults
	in := rroute.NewRoute("users.show", "GET", uri, map[string]any{"tier": "gold"})
	out, err := mw(in)
	assert.Nil(t, err)
	assert.Equal(t, "gold", out.Extra()["tier"])
	assert.Equal(t, "eu", out.Extra()["zone"])

	// the input route's bag is untouched
	assert.Equal(t, 1, len(in.Extra()))
}

func TestMiddlewareAbortsRegistration(t *testing.T) {
	boom := errors.New("rejected")
	r := rroute.NewRouter()
	r.Use(func(route *rroute.Route) (*rroute.Route, error) {
		return nil, boom
	})

	_, err := r.Get("home", "/")
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 0, r.Len())
}

func TestMiddlewareRunsBeforePrefix(t *testing.T) {
	r := rroute.NewRouter()
	r.Use(rroute.WithRouteConfig(rroute.RouteConfig{Prefix: "/app"}))

	err := r.Prefix("/api", func(r *rroute.Router) error {
		_, err := r.Get("ping", "/ping")
		return err
	})
	assert.Nil(t, err)

	// middleware prefix first, then the scoped prefix on top
	assert.Equal(t, "/api/app/ping", r.Route("ping").Uri().Template())
}

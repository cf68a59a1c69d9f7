package rroute

import (
	"path"

	"github.com/rohanthewiz/rroute/consts"
)

// Group registers routes under a common URL prefix with shared registration
// middleware. Groups can be nested to build hierarchical prefixes; each
// level inherits the parent's middleware and may add its own.
// Unlike Router.Prefix, groups nest freely because each carries its own
// composed prefix.
type Group struct {
	// prefix is the URL path prefix for all routes in this group
	prefix string
	// router is the registry routes are inserted into
	router *Router
	// middleware rewrites every route registered through this group
	middleware []RouteMiddleware
}

// Group creates a group on the router with the given prefix and optional
// registration middleware.
func (router *Router) Group(prefix string, mw ...RouteMiddleware) *Group {
	return &Group{
		prefix:     prefix,
		router:     router,
		middleware: mw,
	}
}

// Group creates a sub-group with an additional prefix and optional
// middleware. The new group inherits all middleware from the parent.
// Example: api.Group("/users") registers under /api/users.
func (g *Group) Group(prefix string, mw ...RouteMiddleware) *Group {
	return &Group{
		prefix:     path.Join(g.prefix, prefix),
		router:     g.router,
		middleware: append(g.middleware[:len(g.middleware):len(g.middleware)], mw...),
	}
}

// Use adds middleware applied to all routes registered after this call.
func (g *Group) Use(mw ...RouteMiddleware) {
	g.middleware = append(g.middleware, mw...)
}

// Get registers a GET route with the group prefix.
func (g *Group) Get(name, url string) (*Route, error) {
	return g.register(name, consts.MethodGet, url)
}

// Post registers a POST route with the group prefix.
func (g *Group) Post(name, url string) (*Route, error) {
	return g.register(name, consts.MethodPost, url)
}

// Put registers a PUT route with the group prefix.
func (g *Group) Put(name, url string) (*Route, error) {
	return g.register(name, consts.MethodPut, url)
}

// Patch registers a PATCH route with the group prefix.
func (g *Group) Patch(name, url string) (*Route, error) {
	return g.register(name, consts.MethodPatch, url)
}

// Delete registers a DELETE route with the group prefix.
func (g *Group) Delete(name, url string) (*Route, error) {
	return g.register(name, consts.MethodDelete, url)
}

// Head registers a HEAD route with the group prefix.
func (g *Group) Head(name, url string) (*Route, error) {
	return g.register(name, consts.MethodHead, url)
}

// Options registers an OPTIONS route with the group prefix.
func (g *Group) Options(name, url string) (*Route, error) {
	return g.register(name, consts.MethodOptions, url)
}

// Connect registers a CONNECT route with the group prefix.
func (g *Group) Connect(name, url string) (*Route, error) {
	return g.register(name, consts.MethodConnect, url)
}

// Trace registers a TRACE route with the group prefix.
func (g *Group) Trace(name, url string) (*Route, error) {
	return g.register(name, consts.MethodTrace, url)
}

// register builds the route under the composed prefix, runs the group's
// middleware chain over it, then hands it to the router.
func (g *Group) register(name, method, url string) (*Route, error) {
	uri, err := NewUri(path.Join("/", g.prefix, url), g.router.uriConfig)
	if err != nil {
		return nil, err
	}

	route := NewRoute(name, method, uri, nil)
	for _, mw := range g.middleware {
		route, err = mw(route)
		if err != nil {
			return nil, err
		}
	}

	return g.router.RegisterRoute(route)
}

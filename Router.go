package rroute

import (
	"github.com/rohanthewiz/rroute/consts"
	"github.com/rohanthewiz/rroute/core/tpl"
)

// Router is a registry of named routes. Alongside the name index it keeps a
// "METHOD:url" signature index for O(1) duplicate detection; both indexes
// are written together on every successful registration and there is no
// removal, so they can never disagree.
//
// A Router is process-local mutable state with no internal locking: callers
// registering from multiple goroutines must serialize registration
// themselves. Queries are safe to interleave while no registration runs.
type Router struct {
	opts       RouterOptions
	uriConfig  tpl.Config
	routes     map[string]*Route
	signatures map[string]string // "METHOD:url" -> route name
	order      []string          // registration order, for iteration
	middleware []RouteMiddleware

	// routePrefix is scoped to a single Prefix callback; inPrefix guards
	// against re-entrant Prefix calls, which are not supported.
	routePrefix string
	inPrefix    bool
}

// NewRouter creates an empty registry.
func NewRouter(opts ...RouterOptions) *Router {
	router := &Router{
		routes:     make(map[string]*Route),
		signatures: make(map[string]string),
	}
	if len(opts) > 0 {
		router.opts = opts[0]
	}
	return router
}

// SetUriConfig sets the binding configuration given to every Uri the router
// constructs on behalf of Register and its method helpers.
func (router *Router) SetUriConfig(cfg tpl.Config) {
	router.uriConfig = cfg
}

// Use appends registration middleware, run in order on every route before
// it reaches the registry.
func (router *Router) Use(mw ...RouteMiddleware) {
	router.middleware = append(router.middleware, mw...)
}

// Register builds a Route from raw parts and registers it.
func (router *Router) Register(name, method, url string) (*Route, error) {
	uri, err := NewUri(url, router.uriConfig)
	if err != nil {
		return nil, err
	}
	return router.RegisterRoute(NewRoute(name, method, uri, nil))
}

// Get registers a GET route under the given name.
func (router *Router) Get(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodGet, url)
}

// Post registers a POST route under the given name.
func (router *Router) Post(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodPost, url)
}

// Put registers a PUT route under the given name.
func (router *Router) Put(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodPut, url)
}

// Patch registers a PATCH route under the given name.
func (router *Router) Patch(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodPatch, url)
}

// Delete registers a DELETE route under the given name.
func (router *Router) Delete(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodDelete, url)
}

// Head registers a HEAD route under the given name.
func (router *Router) Head(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodHead, url)
}

// Options registers an OPTIONS route under the given name.
func (router *Router) Options(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodOptions, url)
}

// Connect registers a CONNECT route under the given name.
func (router *Router) Connect(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodConnect, url)
}

// Trace registers a TRACE route under the given name.
func (router *Router) Trace(name, url string) (*Route, error) {
	return router.Register(name, consts.MethodTrace, url)
}

// RegisterRoute runs the route through the registered middleware, applies
// any active prefix scope, enforces immutability and duplicate-signature
// rules, and inserts it. The returned route is the one actually stored,
// which may differ from the argument after middleware and prefixing.
//
// Both indexes are written only after every check has passed, so a rejected
// registration leaves the registry untouched.
func (router *Router) RegisterRoute(route *Route) (*Route, error) {
	var err error
	for _, mw := range router.middleware {
		route, err = mw(route)
		if err != nil {
			return nil, err
		}
	}

	if router.opts.Immutable {
		if _, exists := router.routes[route.Name()]; exists {
			return nil, &RegistrationError{
				Name:     route.Name(),
				Conflict: route.Name(),
				Msg:      "registry is immutable and the name is already registered",
			}
		}
	}

	// Prefixing happens before duplicate detection so the prefixed
	// signature is what gets compared.
	if router.inPrefix {
		route, err = route.WithUriPrefix(router.routePrefix)
		if err != nil {
			return nil, err
		}
	}

	signature := route.Signature()
	if !router.opts.Duplicates {
		if owner, taken := router.signatures[signature]; taken && owner != route.Name() {
			return nil, &RegistrationError{
				Name:     route.Name(),
				Conflict: owner,
				Msg:      "a route with signature " + signature + " is already registered",
			}
		}
	}

	if old, exists := router.routes[route.Name()]; exists {
		// Re-registration replaces the old signature entry so the two
		// indexes stay in one-to-one correspondence.
		if router.signatures[old.Signature()] == old.Name() {
			delete(router.signatures, old.Signature())
		}
	} else {
		router.order = append(router.order, route.Name())
	}
	router.signatures[signature] = route.Name()
	router.routes[route.Name()] = route
	return route, nil
}

// Prefix scopes a URL prefix over every registration made inside fn, then
// clears it. Prefix scopes do not nest; a re-entrant call fails fast.
// Use Group for hierarchical prefixes.
func (router *Router) Prefix(prefix string, fn func(*Router) error) error {
	if router.inPrefix {
		return &RegistrationError{Msg: "Prefix does not nest; already inside a prefix scope"}
	}

	router.routePrefix = prefix
	router.inPrefix = true
	defer func() {
		router.routePrefix = ""
		router.inPrefix = false
	}()

	return fn(router)
}

// Route returns the route registered under name, or nil.
func (router *Router) Route(name string) *Route {
	return router.routes[name]
}

// HasRouteWithName reports whether a route is registered under name.
func (router *Router) HasRouteWithName(name string) bool {
	_, ok := router.routes[name]
	return ok
}

// HasRouteWithUrl reports whether any route owns the given URL for one of
// the given methods. With no methods it probes every known HTTP method,
// returning on the first hit.
func (router *Router) HasRouteWithUrl(url string, methods ...string) bool {
	if len(methods) == 0 {
		methods = consts.Methods
	}
	for _, method := range methods {
		if _, ok := router.signatures[method+consts.SignatureSep+url]; ok {
			return true
		}
	}
	return false
}

// Routes returns every registered route in registration order.
func (router *Router) Routes() []*Route {
	out := make([]*Route, 0, len(router.order))
	for _, name := range router.order {
		out = append(out, router.routes[name])
	}
	return out
}

// Len returns the number of registered routes.
func (router *Router) Len() int {
	return len(router.routes)
}

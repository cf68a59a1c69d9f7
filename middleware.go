package rroute

import (
	"dario.cat/mergo"
)

// RouteMiddleware rewrites a route on its way into the registry.
// Middleware runs in registration order; each receives the previous one's
// output and returns a replacement route (routes are immutable, so rewrites
// are new instances). Returning an error aborts the registration.
type RouteMiddleware func(route *Route) (*Route, error)

// RouteConfig carries the per-route configuration a deployment merges into
// routes at registration time: a URL prefix and default metadata.
type RouteConfig struct {
	Prefix string         `mapstructure:"prefix"`
	Extra  map[string]any `mapstructure:"extra"`
}

// WithRouteConfig builds a middleware that applies cfg to every route:
// the prefix is prepended to the route's Uri and cfg.Extra is merged under
// the route's own metadata, with route-local keys winning.
func WithRouteConfig(cfg RouteConfig) RouteMiddleware {
	return func(route *Route) (*Route, error) {
		if len(cfg.Extra) > 0 {
			merged := make(map[string]any, len(cfg.Extra))
			if err := mergo.Map(&merged, cfg.Extra); err != nil {
				return nil, err
			}
			if len(route.Extra()) > 0 {
				if err := mergo.Map(&merged, route.Extra(), mergo.WithOverride); err != nil {
					return nil, err
				}
			}
			route = route.WithExtra(merged)
		}

		if cfg.Prefix != "" {
			return route.WithUriPrefix(cfg.Prefix)
		}
		return route, nil
	}
}

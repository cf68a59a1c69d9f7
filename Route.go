package rroute

import (
	"github.com/rohanthewiz/rroute/consts"
)

// Route is an immutable named registration: a name, an HTTP method, a Uri,
// and a free-form metadata bag. The router never interprets Extra; it is
// merged and read by registration middleware and callers.
// Rewrites produce new instances via the With* methods.
type Route struct {
	name   string
	method string
	uri    *Uri
	extra  map[string]any
}

// NewRoute builds a route from its parts. extra may be nil.
func NewRoute(name, method string, uri *Uri, extra map[string]any) *Route {
	return &Route{name: name, method: method, uri: uri, extra: extra}
}

// Name returns the route's symbolic name.
func (r *Route) Name() string {
	return r.name
}

// Method returns the route's HTTP method.
func (r *Route) Method() string {
	return r.method
}

// Uri returns the route's Uri.
func (r *Route) Uri() *Uri {
	return r.uri
}

// Extra returns the route's metadata bag. Treat it as read-only; use
// WithExtra to derive a route with different metadata.
func (r *Route) Extra() map[string]any {
	return r.extra
}

// Signature returns the "METHOD:url" key used for duplicate detection.
func (r *Route) Signature() string {
	return r.method + consts.SignatureSep + r.uri.Template()
}

// WithUri returns a copy of the route carrying the given Uri.
func (r *Route) WithUri(uri *Uri) *Route {
	return &Route{name: r.name, method: r.method, uri: uri, extra: r.extra}
}

// WithExtra returns a copy of the route carrying the given metadata bag.
func (r *Route) WithExtra(extra map[string]any) *Route {
	return &Route{name: r.name, method: r.method, uri: r.uri, extra: extra}
}

// WithUriPrefix returns a copy of the route whose Uri sits under prefix.
func (r *Route) WithUriPrefix(prefix string) (*Route, error) {
	uri, err := r.uri.WithPrefix(prefix)
	if err != nil {
		return nil, err
	}
	return r.WithUri(uri), nil
}

package rroute

import (
	"path"

	"github.com/rohanthewiz/rroute/core/tpl"
)

// Uri couples a URI template with its parsed parameter collection and the
// binding configuration used to resolve it. The collection is parsed eagerly
// at construction, so a Uri in hand is always well-formed.
// A Uri is immutable; rewriting (such as applying a prefix) produces a new
// instance.
type Uri struct {
	template string
	params   *tpl.Collection
	config   tpl.Config
}

// NewUri parses template and returns a Uri over it.
// Returns a *tpl.SyntaxError when the template contains a malformed
// placeholder.
func NewUri(template string, cfg ...tpl.Config) (*Uri, error) {
	params, err := tpl.Parse(template)
	if err != nil {
		return nil, err
	}

	u := &Uri{template: template, params: params}
	if len(cfg) > 0 {
		u.config = cfg[0]
	}
	return u, nil
}

// Template returns the source template string.
func (u *Uri) Template() string {
	return u.template
}

// Params returns the parsed parameter collection.
func (u *Uri) Params() *tpl.Collection {
	return u.params
}

// Config returns the Uri's binding configuration.
func (u *Uri) Config() tpl.Config {
	return u.config
}

// Bind resolves the template against values, optionally overriding the
// Uri's binding configuration for this call only.
func (u *Uri) Bind(values any, override ...tpl.Config) (string, error) {
	if len(override) > 0 {
		return tpl.NewBinder(u.params, override[0]).Bind(values, override[0])
	}
	return tpl.NewBinder(u.params, u.config).Bind(values)
}

// Binder returns a binder over the Uri's collection and configuration.
func (u *Uri) Binder() *tpl.Binder {
	return tpl.NewBinder(u.params, u.config)
}

// WithPrefix returns a new Uri whose template is the old one under prefix.
// The receiver is left untouched.
func (u *Uri) WithPrefix(prefix string) (*Uri, error) {
	return NewUri(path.Join("/", prefix, u.template), u.config)
}

package rroute_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/core/tpl"
)

func TestNewUri(t *testing.T) {
	u, err := rroute.NewUri("/users/{id}/posts/{slug?}")
	assert.Nil(t, err)
	assert.Equal(t, "/users/{id}/posts/{slug?}", u.Template())
	assert.Equal(t, 2, u.Params().Len())

	// parsing is eager, so malformed templates never produce a Uri
	_, err = rroute.NewUri("/users/{")
	var synErr *tpl.SyntaxError
	assert.True(t, errors.As(err, &synErr))
}

func TestUriBind(t *testing.T) {
	u, err := rroute.NewUri("/users/{id}")
	assert.Nil(t, err)

	bound, err := u.Bind(map[string]any{"id": 42})
	assert.Nil(t, err)
	assert.Equal(t, "/users/42", bound)

	bound, err = u.Bind(7)
	assert.Nil(t, err)
	assert.Equal(t, "/users/7", bound)
}

func TestUriBindOverride(t *testing.T) {
	u, err := rroute.NewUri("/search")
	assert.Nil(t, err)

	bound, err := u.Bind(map[string]any{"q": "go"})
	assert.Nil(t, err)
	assert.Equal(t, "/search", bound)

	bound, err = u.Bind(map[string]any{"q": "go"}, tpl.Config{BindGetParameters: true})
	assert.Nil(t, err)
	assert.Equal(t, "/search?q=go", bound)
}

func TestUriWithPrefix(t *testing.T) {
	u, err := rroute.NewUri("/users/{id}")
	assert.Nil(t, err)

	prefixed, err := u.WithPrefix("/api")
	assert.Nil(t, err)
	assert.Equal(t, "/api/users/{id}", prefixed.Template())

	// the original is untouched
	assert.Equal(t, "/users/{id}", u.Template())

	bound, err := prefixed.Bind(map[string]any{"id": 1})
	assert.Nil(t, err)
	assert.Equal(t, "/api/users/1", bound)
}

func TestUriConfigCarried(t *testing.T) {
	u, err := rroute.NewUri("/search", tpl.Config{BindGetParameters: true})
	assert.Nil(t, err)

	bound, err := u.Bind(map[string]any{"q": "a b"})
	assert.Nil(t, err)
	assert.Equal(t, "/search?q=a%20b", bound)

	// configuration survives prefixing
	prefixed, err := u.WithPrefix("/api")
	assert.Nil(t, err)
	bound, err = prefixed.Bind(map[string]any{"q": "x"})
	assert.Nil(t, err)
	assert.Equal(t, "/api/search?q=x", bound)
}

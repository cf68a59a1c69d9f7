package tpl_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute/core/tpl"
)

func TestParse(t *testing.T) {
	c, err := tpl.Parse("/users/{id}/posts/{slug?}")
	assert.Nil(t, err)
	assert.Equal(t, 2, c.Len())

	id := c.Get("id")
	assert.True(t, id != nil)
	assert.Equal(t, "id", id.Name)
	assert.True(t, id.Required)
	assert.Equal(t, "{id}", id.Placeholder)

	slug := c.Get("slug")
	assert.True(t, slug != nil)
	assert.False(t, slug.Required)
	assert.Equal(t, "{slug?}", slug.Placeholder)
}

func TestParseEmptyTemplate(t *testing.T) {
	c, err := tpl.Parse("/search")
	assert.Nil(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, len(c.Names()))
	assert.Equal(t, 0, len(c.Required()))
	assert.Equal(t, "/search", c.Template())
}

func TestParseOrder(t *testing.T) {
	c, err := tpl.Parse("/{a}/{b?}/{c}")
	assert.Nil(t, err)

	names := c.Names()
	assert.Equal(t, 3, len(names))
	assert.Equal(t, "a", names[0])
	assert.Equal(t, "b", names[1])
	assert.Equal(t, "c", names[2])

	// every listed name resolves to a parameter
	for _, name := range names {
		assert.True(t, c.Get(name) != nil)
		assert.True(t, c.Has(name))
	}

	required := c.Required()
	assert.Equal(t, 2, len(required))
	assert.Equal(t, "a", required[0].Name)
	assert.Equal(t, "c", required[1].Name)
}

func TestParseSyntaxErrors(t *testing.T) {
	malformed := []string{
		"/users/{id",
		"/users/{}",
		"/users/{?}",
		"/users/{id{nested}}",
	}

	for _, template := range malformed {
		_, err := tpl.Parse(template)
		var synErr *tpl.SyntaxError
		assert.True(t, errors.As(err, &synErr))
		assert.Equal(t, template, synErr.Template)
	}
}

func TestParseRepeatedPlaceholder(t *testing.T) {
	// Identical tokens collapse into one logical parameter.
	c, err := tpl.Parse("/{id}/copy/{id}")
	assert.Nil(t, err)
	assert.Equal(t, 1, c.Len())

	bound, err := tpl.NewBinder(c).Bind(map[string]any{"id": 7})
	assert.Nil(t, err)
	assert.Equal(t, "/7/copy/7", bound)

	// Conflicting tokens for one name are rejected at parse time.
	_, err = tpl.Parse("/{id}/copy/{id?}")
	var synErr *tpl.SyntaxError
	assert.True(t, errors.As(err, &synErr))
}

func TestGetMissingParameter(t *testing.T) {
	c, err := tpl.Parse("/users/{id}")
	assert.Nil(t, err)
	assert.True(t, c.Get("nope") == nil)
	assert.False(t, c.Has("nope"))
}

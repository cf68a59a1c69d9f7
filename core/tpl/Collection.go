package tpl

import (
	"strings"
)

const (
	runeOpenBrace  = '{'
	runeCloseBrace = '}'
	runeOptional   = '?'
)

// Collection is the ordered set of parameters parsed from one URI template.
// Order is first-occurrence order in the template. A name appears at most
// once; a template repeating the same placeholder token collapses it into a
// single logical parameter, while conflicting tokens for one name
// ({x} vs {x?}) are rejected at parse time.
// A Collection is immutable after Parse.
type Collection struct {
	template string
	params   []Parameter
}

// Parse scans template left to right and extracts every placeholder.
// A placeholder is "{name}" for a required parameter or "{name?}" for an
// optional one. Unterminated braces, nested braces and empty names yield
// a *SyntaxError.
func Parse(template string) (*Collection, error) {
	c := &Collection{template: template}

	for i := 0; i < len(template); i++ {
		if template[i] != runeOpenBrace {
			continue
		}

		end := -1
		for j := i + 1; j < len(template); j++ {
			if template[j] == runeOpenBrace {
				return nil, &SyntaxError{Template: template, Pos: j, Msg: "nested '{'"}
			}
			if template[j] == runeCloseBrace {
				end = j
				break
			}
		}
		if end < 0 {
			return nil, &SyntaxError{Template: template, Pos: i, Msg: "unterminated '{'"}
		}

		placeholder := template[i : end+1]
		name := template[i+1 : end]

		required := true
		if strings.HasSuffix(name, string(runeOptional)) {
			required = false
			name = name[:len(name)-1]
		}
		if name == "" {
			return nil, &SyntaxError{Template: template, Pos: i, Msg: "empty parameter name"}
		}

		if prev := c.Get(name); prev != nil {
			if prev.Placeholder != placeholder {
				return nil, &SyntaxError{
					Template: template, Pos: i,
					Msg: "parameter " + quote(name) + " redeclared with a different placeholder",
				}
			}
			// Same token again; one logical parameter, substituted everywhere.
			i = end
			continue
		}

		c.params = append(c.params, Parameter{
			Name:        name,
			Required:    required,
			Placeholder: placeholder,
		})
		i = end
	}

	return c, nil
}

// Template returns the source template this collection was parsed from.
func (c *Collection) Template() string {
	return c.template
}

// Len returns the number of distinct parameters.
func (c *Collection) Len() int {
	return len(c.params)
}

// Has reports whether a parameter with the given name exists.
func (c *Collection) Has(name string) bool {
	return c.Get(name) != nil
}

// Get returns the parameter with the given name, or nil when absent.
func (c *Collection) Get(name string) *Parameter {
	for i := range c.params {
		if c.params[i].Name == name {
			return &c.params[i]
		}
	}
	return nil
}

// All returns every parameter in parse order.
func (c *Collection) All() []Parameter {
	out := make([]Parameter, len(c.params))
	copy(out, c.params)
	return out
}

// Required returns the subset of parameters whose values must resolve to a
// non-empty string, in parse order.
func (c *Collection) Required() []Parameter {
	var out []Parameter
	for _, p := range c.params {
		if p.Required {
			out = append(out, p)
		}
	}
	return out
}

// Names returns every parameter name in parse order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.params))
	for i, p := range c.params {
		names[i] = p.Name
	}
	return names
}

func quote(s string) string {
	return `"` + s + `"`
}

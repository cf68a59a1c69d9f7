package tpl

// Parameter represents one placeholder parsed out of a URI template.
//
// Example:
//   Template: /users/{id}/posts/{slug?}
//   Result:   []Parameter{
//       {Name: "id", Required: true, Placeholder: "{id}"},
//       {Name: "slug", Required: false, Placeholder: "{slug?}"},
//   }
//
// Placeholder holds the exact substring of the template this parameter
// replaces, so binding can substitute it without re-scanning the template.
// Parameters are created only by Parse and never mutated afterwards.
type Parameter struct {
	Name        string
	Required    bool
	Placeholder string
}

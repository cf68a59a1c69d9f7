package tpl

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"
)

// Config holds the binding options for a Binder.
// A zero Config binds path parameters only and stringifies values with
// DefaultConvert.
type Config struct {
	// BindGetParameters appends object keys that did not match any
	// placeholder to the URL as query parameters.
	BindGetParameters bool

	// TypeConversion stringifies non-string values. Nil means DefaultConvert.
	TypeConversion ConvertFunc
}

// Binder substitutes runtime values into the placeholders of a parsed
// template, producing a resolved URL. A Binder holds no mutable state;
// every Bind call is a pure computation over the collection and its inputs.
type Binder struct {
	params *Collection
	config Config
}

// NewBinder creates a binder over the given collection.
func NewBinder(params *Collection, cfg ...Config) *Binder {
	b := &Binder{params: params}
	if len(cfg) > 0 {
		b.config = cfg[0]
	}
	return b
}

// Bind resolves the template against values and returns the bound URL.
//
// The shape of values decides the strategy, determined once on entry:
//   - a map binds by parameter name, with unmatched keys optionally
//     becoming query parameters
//   - a slice or array binds positionally in parse order
//   - anything else is a scalar bound to the first parameter
//
// A template with no placeholders and no query binding configured is
// returned unchanged without inspecting values.
func (b *Binder) Bind(values any, override ...Config) (string, error) {
	cfg := b.activeConfig(override)

	if b.params.Len() == 0 && !cfg.BindGetParameters {
		return b.params.Template(), nil
	}

	if values == nil {
		return b.bindObject(nil, cfg)
	}

	switch reflect.ValueOf(values).Kind() {
	case reflect.Map:
		object, err := toStringMap(values)
		if err != nil {
			return "", &BindingError{Msg: "values are not bindable", Err: err}
		}
		return b.bindObject(object, cfg)
	case reflect.Slice, reflect.Array:
		return b.bindList(toList(values), cfg)
	default:
		return b.bindScalar(values, cfg)
	}
}

// BindParameter binds a single named parameter into current, which is the
// template or a partially bound URL from an earlier call. Binding a name the
// collection does not contain is a *BindingError.
func (b *Binder) BindParameter(current, name string, value any, override ...Config) (string, error) {
	cfg := b.activeConfig(override)

	param := b.params.Get(name)
	if param == nil {
		return "", &BindingError{Param: name, Msg: "template has no such parameter"}
	}
	return b.bindParameter(current, param, value, value != nil, cfg)
}

// CanBindObject reports whether values would bind cleanly as an object.
// Binding failures become false; any other error (such as values not being
// a string-keyed map) is returned so programming errors are not swallowed.
func (b *Binder) CanBindObject(values any, override ...Config) (bool, error) {
	cfg := b.activeConfig(override)

	object, err := toStringMap(values)
	if err != nil {
		return false, err
	}

	if _, err = b.bindObject(object, cfg); err != nil {
		var bindErr *BindingError
		if errors.As(err, &bindErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// bindObject binds every parsed parameter by name, then synthesizes a query
// string from the unmatched keys when configured. The caller's map is never
// mutated; consumed keys are tracked in a local set.
func (b *Binder) bindObject(values map[string]any, cfg Config) (string, error) {
	bound := b.params.Template()
	consumed := make(map[string]struct{}, len(values))

	var err error
	for _, param := range b.params.params {
		value, present := values[param.Name]
		if present {
			consumed[param.Name] = struct{}{}
		}

		bound, err = b.bindParameter(bound, &param, value, present, cfg)
		if err != nil {
			return "", err
		}
	}

	if cfg.BindGetParameters {
		return b.appendQuery(bound, values, consumed, cfg)
	}
	return bound, nil
}

// bindList binds positionally: the i-th element to the i-th parameter in
// parse order. Elements beyond the parameter count are ignored; parameters
// beyond the element count bind as absent.
func (b *Binder) bindList(values []any, cfg Config) (string, error) {
	bound := b.params.Template()

	var err error
	for i, param := range b.params.params {
		var value any
		present := i < len(values)
		if present {
			value = values[i]
		}

		bound, err = b.bindParameter(bound, &param, value, present, cfg)
		if err != nil {
			return "", err
		}
	}
	return bound, nil
}

// bindScalar binds one bare value to the first parameter. With more than one
// required parameter a scalar cannot say which placeholder it targets, and a
// template with no placeholders has nowhere to put it.
func (b *Binder) bindScalar(value any, cfg Config) (string, error) {
	if b.params.Len() == 0 {
		return "", &BindingError{Msg: "cannot bind a scalar value to a template with no placeholders"}
	}
	if required := b.params.Required(); len(required) > 1 {
		return "", &BindingError{
			Msg: fmt.Sprintf("cannot bind a single scalar value to %d required parameters", len(required)),
		}
	}
	return b.bindParameter(b.params.Template(), &b.params.params[0], value, true, cfg)
}

// bindParameter substitutes one parameter's value into current.
// Absent values are an error for required parameters and the empty string
// for optional ones. Trailing slashes are stripped after every substitution
// so optional trailing segments leave no artifacts.
func (b *Binder) bindParameter(current string, param *Parameter, value any, present bool, cfg Config) (string, error) {
	if !present || value == nil {
		if param.Required {
			return "", &BindingError{Param: param.Name, Msg: "required parameter is missing"}
		}
		return substitute(current, param, ""), nil
	}

	s, err := b.toString(value, cfg)
	if err != nil {
		return "", &BindingError{
			Param: param.Name,
			Msg:   fmt.Sprintf("cannot bind value of type %T", value),
			Err:   err,
		}
	}

	if param.Required && s == "" {
		if _, wasString := value.(string); wasString {
			return "", &BindingError{Param: param.Name, Msg: "required parameter bound to an empty string"}
		}
		return "", &BindingError{
			Param: param.Name,
			Msg:   fmt.Sprintf("value of type %T converted to an empty string", value),
		}
	}

	return substitute(current, param, url.PathEscape(s)), nil
}

// appendQuery adds every key not consumed by a placeholder as a query
// parameter. Keys are sorted for deterministic output; both keys and values
// are percent-encoded with %20 for spaces.
func (b *Binder) appendQuery(bound string, values map[string]any, consumed map[string]struct{}, cfg Config) (string, error) {
	remaining := make([]string, 0, len(values))
	for key := range values {
		if _, ok := consumed[key]; !ok {
			remaining = append(remaining, key)
		}
	}
	sort.Strings(remaining)

	var sb strings.Builder
	sb.WriteString(bound)

	for i, key := range remaining {
		value, err := b.toString(values[key], cfg)
		if err != nil {
			return "", &BindingError{
				Param: key,
				Msg:   fmt.Sprintf("cannot bind query value of type %T", values[key]),
				Err:   err,
			}
		}

		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(queryEscape(key))
		sb.WriteByte('=')
		sb.WriteString(queryEscape(value))
	}
	return sb.String(), nil
}

func (b *Binder) activeConfig(override []Config) Config {
	if len(override) > 0 {
		return override[0]
	}
	return b.config
}

// substitute replaces every occurrence of the parameter's placeholder and
// strips any trailing slashes the substitution exposed.
func substitute(current string, param *Parameter, encoded string) string {
	out := strings.ReplaceAll(current, param.Placeholder, encoded)
	for strings.HasSuffix(out, "/") {
		out = out[:len(out)-1]
	}
	return out
}

// queryEscape percent-encodes a query key or value, rendering spaces as %20
// to match path encoding rather than form encoding's '+'.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// toStringMap normalizes any string-keyed map into map[string]any.
// Non-maps and maps with non-string keys are plain errors, distinct from
// binding errors, so probes like CanBindObject propagate them.
func toStringMap(values any) (map[string]any, error) {
	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected a map, got %T", values)
	}
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("expected string keys, got %s", rv.Type().Key())
	}

	object := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		object[iter.Key().String()] = iter.Value().Interface()
	}
	return object, nil
}

// toList flattens any slice or array into []any for positional binding.
func toList(values any) []any {
	rv := reflect.ValueOf(values)
	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list
}

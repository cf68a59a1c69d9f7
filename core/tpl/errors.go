package tpl

import "fmt"

// SyntaxError reports a malformed placeholder token found while parsing a
// URI template. It is fatal to the parse call and never recovered internally.
type SyntaxError struct {
	Template string
	Pos      int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("uri template syntax error at offset %d in %q: %s", e.Pos, e.Template, e.Msg)
}

// BindingError reports a bind attempt that could not be completed:
// a missing or empty required value, binding to a non-existent parameter,
// an ambiguous scalar bind, or a wrapped conversion failure.
type BindingError struct {
	Param string // offending parameter name, empty when not parameter-specific
	Msg   string
	Err   error // wrapped cause, usually a *ConversionError
}

func (e *BindingError) Error() string {
	msg := "uri parameter binding error"
	if e.Param != "" {
		msg += " for " + quote(e.Param)
	}
	msg += ": " + e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// ConversionError reports that a conversion function could not stringify a
// value. The binder always catches it and re-wraps it in a *BindingError
// carrying the parameter name; it never reaches Bind callers raw.
type ConversionError struct {
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert value of type %T to string", e.Value)
}

package tpl

import (
	"strings"

	"github.com/spf13/cast"
)

// ConvertFunc turns a non-string value into its string form.
// Implementations return a *ConversionError (or any error) when the value
// cannot be stringified; the binder wraps that with parameter context.
type ConvertFunc func(value any) (string, error)

// DefaultConvert stringifies scalars with cast, so numbers, bools, stringers
// and time values all take their natural form.
func DefaultConvert(value any) (string, error) {
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", &ConversionError{Value: value}
	}
	return s, nil
}

// toString normalizes a bound value to its trimmed string form.
// Strings pass through untouched apart from trimming; everything else goes
// through the configured conversion function.
func (b *Binder) toString(value any, cfg Config) (string, error) {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s), nil
	}

	convert := cfg.TypeConversion
	if convert == nil {
		convert = DefaultConvert
	}

	s, err := convert(value)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

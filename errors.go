package rroute

import "fmt"

// RegistrationError reports a rejected route registration: a name collision
// on an immutable registry, a duplicate method+url signature, or a
// re-entrant prefix scope. Conflict names the already registered route when
// one is involved.
type RegistrationError struct {
	Name     string // route being registered
	Conflict string // existing route that blocked it, when applicable
	Msg      string
}

func (e *RegistrationError) Error() string {
	msg := "route registration error"
	if e.Name != "" {
		msg += " for " + fmt.Sprintf("%q", e.Name)
	}
	msg += ": " + e.Msg
	if e.Conflict != "" {
		msg += fmt.Sprintf(" (conflicts with route %q)", e.Conflict)
	}
	return msg
}

package domain

import (
	"sort"
	"strings"
)

// Errors maps a field name to its user-facing message.
type Errors map[string]string

func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// ValidationFailed blocks a submit locally; it never reaches the transport.
type ValidationFailed struct {
	Errors Errors
}

func (e *ValidationFailed) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, e.Errors[field])
	}
	return "validation failed: " + strings.Join(msgs, " ")
}

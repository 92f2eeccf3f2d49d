package calink

import (
	"fmt"
	"strings"
)

// all three error types share the "msg |  k: v  k: v" format so they log the
// same way regardless of kind
func formatError(msg string, args map[string]any) string {
	var sb strings.Builder
	sb.WriteString(msg)
	sb.WriteString(" | ")
	for key, value := range args {
		sb.WriteString(fmt.Sprintf(" %s: %v", key, value))
	}
	return sb.String()
}

// The event itself is malformed: end before start, a zero date, an
// unparseable date-time value.
type InvalidEventError struct {
	msg  string
	args map[string]any
}

func NewInvalidEventError(msg string, args map[string]any) *InvalidEventError {
	if args == nil {
		args = make(map[string]any)
	}
	return &InvalidEventError{msg: msg, args: args}
}

func (e *InvalidEventError) Error() string {
	return formatError(e.msg, e.args)
}

// The requested provider key is not in the closed provider set.
type UnknownProviderError struct {
	msg  string
	args map[string]any
}

func NewUnknownProviderError(msg string, args map[string]any) *UnknownProviderError {
	if args == nil {
		args = make(map[string]any)
	}
	return &UnknownProviderError{msg: msg, args: args}
}

func (e *UnknownProviderError) Error() string {
	return formatError(e.msg, e.args)
}

// A zone identifier is not in the IANA database.
type UnsupportedZoneError struct {
	msg  string
	args map[string]any
}

func NewUnsupportedZoneError(msg string, args map[string]any) *UnsupportedZoneError {
	if args == nil {
		args = make(map[string]any)
	}
	return &UnsupportedZoneError{msg: msg, args: args}
}

func (e *UnsupportedZoneError) Error() string {
	return formatError(e.msg, e.args)
}

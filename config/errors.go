package config

import "fmt"

// The categories of violations detected while loading a configuration file.
type ErrorKind int

const (
	BadSyntax ErrorKind = iota
	UnknownKey
	MissingKey
	TypeMismatch
	InvalidEnum
	RangeViolation
)

func (k ErrorKind) String() string {
	switch k {
	case BadSyntax:
		return "syntax error"
	case UnknownKey:
		return "unknown key"
	case MissingKey:
		return "missing key"
	case TypeMismatch:
		return "type mismatch"
	case InvalidEnum:
		return "invalid enum value"
	case RangeViolation:
		return "range violation"
	}
	return "unknown error"
}

// Error describes a single violation in a configuration file with enough
// context to fix it: the offending key, the source line and the raw value.
type Error struct {
	Kind ErrorKind
	File string
	// Line is zero for violations not tied to a single line (missing keys).
	Line   int
	Key    string
	Raw    string
	Detail string
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case BadSyntax:
		msg = fmt.Sprintf("%s in %q", e.Detail, e.Raw)
	case UnknownKey:
		msg = fmt.Sprintf("unknown key %q", e.Key)
	case MissingKey:
		msg = fmt.Sprintf("missing required key %q", e.Key)
	case TypeMismatch:
		msg = fmt.Sprintf("invalid %s value %q for key %q", e.Detail, e.Raw, e.Key)
	case InvalidEnum:
		msg = fmt.Sprintf("invalid value %q for key %q; allowed values: %s", e.Raw, e.Key, e.Detail)
	case RangeViolation:
		msg = fmt.Sprintf("value %q for key %q violates constraint '%s'", e.Raw, e.Key, e.Detail)
	}

	if e.Line > 0 {
		return fmt.Sprintf("[%s: %d] error: %s", e.File, e.Line, msg)
	}
	return fmt.Sprintf("[%s] error: %s", e.File, msg)
}

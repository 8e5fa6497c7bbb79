package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can choose a message without
// string matching.
type ErrorKind int

const (
	KindUnreadableFile ErrorKind = iota + 1
	KindMissingInput
	KindInvalidInput
	KindOutOfDomain
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnreadableFile:
		return "unreadable file"
	case KindMissingInput:
		return "missing input"
	case KindInvalidInput:
		return "invalid input"
	case KindOutOfDomain:
		return "out of domain"
	default:
		return "unknown"
	}
}

// Error is the failure outcome shared by the importer and calculators.
type Error struct {
	Kind    ErrorKind
	Field   Field
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg += " " + string(e.Field)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// MissingInput builds a KindMissingInput error for f.
func MissingInput(f Field) *Error {
	return &Error{Kind: KindMissingInput, Field: f, Message: "value is required"}
}

// Errorf builds an Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is, or wraps, a domain Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == k
	}
	return false
}

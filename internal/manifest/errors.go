package manifest

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a manifest update failed so callers can branch on
// the outcome without matching message text.
type ErrorKind int

const (
	// Unknown is returned by KindOf for errors that did not come from this package.
	Unknown ErrorKind = iota

	// FileNotFound means the manifest is missing or unreadable.
	FileNotFound

	// ParseError means the manifest is not a JSON object.
	ParseError

	// InvalidVersionKind means the requested increment is not patch, minor or major.
	InvalidVersionKind

	// MalformedVersionField means "version" is absent, not a string, or not
	// three non-negative integers.
	MalformedVersionField

	// WriteError means the updated manifest could not be persisted.
	WriteError
)

// String returns the kind name used in debug logs.
func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "FileNotFound"
	case ParseError:
		return "ParseError"
	case InvalidVersionKind:
		return "InvalidVersionKind"
	case MalformedVersionField:
		return "MalformedVersionField"
	case WriteError:
		return "WriteError"
	default:
		return "Unknown"
	}
}

// Error is the failure side of an update. Err holds the underlying cause and
// is exposed through Unwrap.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

// Error renders the user-facing message printed on stderr.
func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("cannot read manifest %s: %v", e.Path, e.Err)
	case ParseError:
		return fmt.Sprintf("cannot parse manifest %s: %v", e.Path, e.Err)
	case InvalidVersionKind:
		return e.Err.Error()
	case MalformedVersionField:
		return fmt.Sprintf("invalid \"version\" field in %s: %v", e.Path, e.Err)
	case WriteError:
		return fmt.Sprintf("cannot write manifest %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err, or Unknown.
func KindOf(err error) ErrorKind {
	var merr *Error
	if errors.As(err, &merr) {
		return merr.Kind
	}
	return Unknown
}

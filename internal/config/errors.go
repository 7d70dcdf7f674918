package config

import (
	"errors"
	"fmt"
)

// Kind classifies configuration failures
type Kind int

const (
	// KindConfig covers malformed tokens, missing mandatory fields and
	// unreadable or malformed configuration files.
	KindConfig Kind = iota + 1
	// KindValidation covers paths that do not exist or have the wrong type,
	// and a logo that cannot be decoded.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration error"
	case KindValidation:
		return "validation error"
	default:
		return "error"
	}
}

// Error is a structured configuration error naming the field and path involved
type Error struct {
	Kind  Kind
	Field string
	Path  string
	Err   error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s %q %v", e.Kind, e.Field, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s %v", e.Kind, e.Field, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from err; zero if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

var (
	errNotSpecified = errors.New("is not specified")
	errNotExist     = errors.New("does not exist")
	errNotFile      = errors.New("is not a file")
	errNotDirectory = errors.New("is not a directory")
	errNotFileOrDir = errors.New("is not a file or directory")
)

package parsing

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the source file does not exist or cannot be read
	ErrNotFound = errors.New("source file not found")
	// ErrParseFailure is returned when the parser could not produce a usable tree
	ErrParseFailure = errors.New("source file could not be parsed")
)

// LoadError describes why a source unit could not be loaded. Its Kind is
// always one of ErrNotFound or ErrParseFailure
type LoadError struct {
	Kind error
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Is matches the error against its kind, so that `errors.Is(err, ErrNotFound)`
// works on a wrapped LoadError
func (e *LoadError) Is(target error) bool {
	return target == e.Kind
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func notFound(path string, err error) error {
	return &LoadError{Kind: ErrNotFound, Path: path, Err: err}
}

func parseFailure(path string, err error) error {
	return &LoadError{Kind: ErrParseFailure, Path: path, Err: err}
}

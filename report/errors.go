package report

import (
	"errors"
	"fmt"
)

// ErrInterfaceNotFound is returned when the source unit has no top-level
// interface with the requested name
var ErrInterfaceNotFound = errors.New("interface not found")

// NotFoundError names the interface that could not be found
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInterfaceNotFound, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrInterfaceNotFound
}

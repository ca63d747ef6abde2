package api

import (
	"errors"
	"fmt"
)

// ErrRemote matches every failed remote call, whether the transport failed or
// the server answered with a non-2xx status.
var ErrRemote = errors.New("remote call failed")

// Error describes a failed call to the foods API.
type Error struct {
	Op         string // list, create, update, delete
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s %s %s: status %d: %s", e.Op, e.Method, e.Path, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s %s: status %d", e.Op, e.Method, e.Path, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Method, e.Path, e.Err)
	default:
		return fmt.Sprintf("%s %s %s: %s", e.Op, e.Method, e.Path, ErrRemote)
	}
}

// Is reports ErrRemote as a match so callers can test the error kind.
func (e *Error) Is(target error) bool {
	return target == ErrRemote
}

func (e *Error) Unwrap() error {
	return e.Err
}

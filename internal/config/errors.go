package config

import (
	"errors"
	"fmt"
)

// ErrBadLogLevel is returned when the configured log level is not one of
// debug, info, warn, error.
var ErrBadLogLevel = errors.New("config: invalid log level")

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

package demo

import (
	"errors"
)

// Errors used by the package.
var (
	ErrEmptyStep       = errors.New("empty step")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrValueNotFound   = errors.New("value is not found")
)

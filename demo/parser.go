package demo

import (
	"strconv"
)

// Parser converts a script argument into a list value.
type Parser[T comparable] func(s string) (T, error)

// ParseInt parses decimal integers.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseString accepts any argument as is.
func ParseString(s string) (string, error) {
	return s, nil
}

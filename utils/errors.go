package utils

import (
	"fmt"

	"github.com/pkg/errors"
)

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError[ExpectedT any](actual interface{}) error {
	return errors.Errorf("expected %s but got %s", TypeStr[ExpectedT](), getType(actual))
}

// TypeStr returns a human readable name for the type parameter.
func TypeStr[T any]() string {
	return getType((*T)(nil))[1:]
}

func getType(v interface{}) string {
	if v == nil {
		return "<unknown (nil interface)>"
	}
	return fmt.Sprintf("%T", v)
}

// NewOutOfRangeError is used when a configured value falls outside of its permitted range.
func NewOutOfRangeError(name string, value interface{}, expected string) error {
	return errors.Errorf("%s %v out of range, expected %s", name, value, expected)
}

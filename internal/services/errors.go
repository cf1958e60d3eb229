package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks errors caused by bad caller input rather than storage.
var ErrInvalidInput = errors.New("invalid input")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrInvalidInput }

func invalid(format string, args ...any) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

func required(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid("%s is required", field)
	}
	return value, nil
}

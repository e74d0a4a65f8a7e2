// Package validator provides input validation for the application
package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyString is returned when a string parameter is empty
	ErrEmptyString = errors.New("string cannot be empty")
)

// ValidateNonEmpty validates that a string is not empty
func ValidateNonEmpty(s string) error {
	if s == "" {
		return ErrEmptyString
	}
	return nil
}

// ValidateID validates that an ID is positive
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("invalid id: %d (must be positive)", id)
	}
	return nil
}

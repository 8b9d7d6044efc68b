package utils

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
	ErrNotFound            = errors.New("resource not found")
	ErrItineraryNotFound   = errors.New("itinerary not found")
	ErrDayNotFound         = errors.New("day not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrPreferenceNotFound  = errors.New("preferences not found")
	ErrEventNotFound       = errors.New("calendar event not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// ValidationError carries a field-keyed map of messages, the shape form
// clients render inline next to each input.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (v *ValidationError) Add(field, message string) {
	if _, exists := v.Fields[field]; exists {
		return
	}
	v.Fields[field] = message
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// OrNil returns nil when no field failed so callers can `return v.OrNil()`.
func (v *ValidationError) OrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

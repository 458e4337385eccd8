// Package domain contains the quote and movie types and the errors the rest
// of the service reasons about. Domain errors describe business outcomes, not
// transport failures; adapters map them to HTTP status codes.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates no quote matched the request.
	ErrNotFound = errors.New("not found")

	// ErrUnknownMovie indicates a movie slug outside the known table.
	// It is deliberately distinct from ErrNotFound.
	ErrUnknownMovie = errors.New("unknown movie")

	// ErrValidation indicates a business rule rejected an input.
	ErrValidation = errors.New("validation failed")

	// ErrCorpus indicates a quote corpus could not be read or parsed.
	ErrCorpus = errors.New("corpus load failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// UnknownMovieError reports a slug that is not in the movie table.
type UnknownMovieError struct {
	Slug string
}

// Error implements the error interface.
func (e *UnknownMovieError) Error() string {
	return fmt.Sprintf("unknown movie %q", e.Slug)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnknownMovieError) Unwrap() error {
	return ErrUnknownMovie
}

// NewUnknownMovieError creates an unknown movie error for slug.
func NewUnknownMovieError(slug string) error {
	return &UnknownMovieError{Slug: slug}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// CorpusError describes why a corpus source could not be loaded.
// Record is the zero-based index of the offending record, or -1 when the
// failure is not tied to a single record.
type CorpusError struct {
	Source string
	Record int
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *CorpusError) Error() string {
	msg := fmt.Sprintf("corpus %q: %s", e.Source, e.Reason)
	if e.Record >= 0 {
		msg = fmt.Sprintf("corpus %q record %d: %s", e.Source, e.Record, e.Reason)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *CorpusError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCorpus}
	}

	return []error{ErrCorpus, e.Err}
}

// NewCorpusError creates a corpus error that is not tied to a single record.
func NewCorpusError(source, reason string, cause error) error {
	return &CorpusError{Source: source, Record: -1, Reason: reason, Err: cause}
}

// NewCorpusRecordError creates a corpus error for the record at index.
func NewCorpusRecordError(source string, index int, reason string) error {
	return &CorpusError{Source: source, Record: index, Reason: reason}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnknownMovie checks if an error reports an unrecognized movie slug.
func IsUnknownMovie(err error) bool {
	return errors.Is(err, ErrUnknownMovie)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsCorpus checks if an error is a corpus load error.
func IsCorpus(err error) bool {
	return errors.Is(err, ErrCorpus)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

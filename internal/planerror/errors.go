// Package planerror defines the typed errors shared by the planning engine,
// the wishlist store and the import surfaces.
package planerror

import (
	"errors"
	"fmt"
)

// InvalidInputError reports input that was rejected before any computation.
// Bad data is refused at the call that introduces it and never corrupts a
// previously computed plan.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid input: %s='%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// NewInvalidInput builds an InvalidInputError for the given field.
func NewInvalidInput(field, value, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

// NotFoundError reports an operation referencing an unknown identity.
// A repeated delete of the same identity reports NotFound rather than
// silently succeeding twice, so audit trails stay consistent.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// NewNotFound builds a NotFoundError for the given kind and identity.
func NewNotFound(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// CurrencyMismatchError reports an operation mixing two currencies.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s vs %s", e.Left, e.Right)
}

// FeedError reports a failure while parsing an external deals feed.
type FeedError struct {
	Source string
	Msg    string
	Err    error
}

func (e *FeedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("feed %s: %s: %v", e.Source, e.Msg, e.Err)
	}
	return fmt.Sprintf("feed %s: %s", e.Source, e.Msg)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsCurrencyMismatch reports whether err is (or wraps) a CurrencyMismatchError.
func IsCurrencyMismatch(err error) bool {
	var target *CurrencyMismatchError
	return errors.As(err, &target)
}

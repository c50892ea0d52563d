// Package errors provides error handling for measure.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for CLI users
//
// On top of that it declares the sentinels every measure package reports
// through. Typed errors in registry and measure wrap or match these, so
// callers only ever need errors.Is:
//
//	m, err := measures.Exact.Distance.Parse("3 parsnips")
//	if errors.Is(err, errors.ErrUnknownUnit) {
//	    // try another dimension
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapOnce     = crdb.UnwrapOnce
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors shared by every measure package.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrDuplicateSymbol indicates two different units claimed the same symbol
	// while a dimension was being declared. It is a data bug, never user input.
	ErrDuplicateSymbol = New("duplicate unit symbol")

	// ErrUnknownUnit indicates a unit name or alias did not resolve in a dimension
	ErrUnknownUnit = New("unknown unit")

	// ErrAttributeNotFound is the attribute-style flavour of ErrUnknownUnit.
	// errors.Is matches it against both sentinels.
	ErrAttributeNotFound = Wrap(ErrUnknownUnit, "attribute not found")

	// ErrKeyNotFound is the item-style flavour of ErrUnknownUnit
	ErrKeyNotFound = Wrap(ErrUnknownUnit, "key not found")

	// ErrTypeMismatch indicates arithmetic between incompatible operands
	ErrTypeMismatch = New("type mismatch")

	// ErrNotSupported indicates an operation that is not defined for the operands
	ErrNotSupported = New("operation not supported")

	// ErrUnguessable indicates no dimension accepted a unit during Guess
	ErrUnguessable = New("cannot guess measure")

	// ErrInvalidValue indicates a numeric literal that could not be parsed
	ErrInvalidValue = New("invalid value")
)

// IsUnknownUnitError checks if an error is or wraps ErrUnknownUnit.
func IsUnknownUnitError(err error) bool {
	return err != nil && Is(err, ErrUnknownUnit)
}

// IsTypeMismatchError checks if an error is or wraps ErrTypeMismatch
func IsTypeMismatchError(err error) bool {
	return err != nil && Is(err, ErrTypeMismatch)
}

// IsNotSupportedError checks if an error is or wraps ErrNotSupported
func IsNotSupportedError(err error) bool {
	return err != nil && Is(err, ErrNotSupported)
}

// NewInvalidValueError creates an invalid-value error with a formatted message
func NewInvalidValueError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidValue, Newf(format, args...).Error())
}

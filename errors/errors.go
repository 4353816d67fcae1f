// Package errors provides error handling for visgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to CLI users
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := render(); err != nil {
//	    return errors.Wrap(err, "failed to render header")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'visgen generate' to refresh headers")
//
//	// Check errors
//	if errors.Is(err, errors.ErrHeadersOutOfDate) {
//	    // headers drifted from the manifest
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
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across visgen.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrManifestNotFound indicates no distribution manifest was found on disk
	ErrManifestNotFound = New("manifest not found")

	// ErrUnknownModule indicates a module name that is not in the distribution
	ErrUnknownModule = New("unknown module")

	// ErrInvalidPrefix indicates a token prefix or define that is not a legal C identifier
	ErrInvalidPrefix = New("invalid prefix")

	// ErrHeadersOutOfDate indicates generated headers no longer match the manifest
	ErrHeadersOutOfDate = New("headers out of date")

	// ErrProbeFailed indicates one or more probe expectations did not hold
	ErrProbeFailed = New("probe failed")

	// ErrIncompatibleVersion indicates the manifest requires a different tool version
	ErrIncompatibleVersion = New("incompatible visgen version")
)

// IsManifestNotFound checks if an error is or wraps ErrManifestNotFound.
func IsManifestNotFound(err error) bool {
	return err != nil && Is(err, ErrManifestNotFound)
}

// IsHeadersOutOfDate checks if an error is or wraps ErrHeadersOutOfDate.
func IsHeadersOutOfDate(err error) bool {
	return err != nil && Is(err, ErrHeadersOutOfDate)
}

// IsProbeFailure checks if an error is or wraps ErrProbeFailed.
func IsProbeFailure(err error) bool {
	return err != nil && Is(err, ErrProbeFailed)
}

// NewUnknownModuleError creates an unknown-module error naming the module.
func NewUnknownModuleError(name string) error {
	return Wrapf(ErrUnknownModule, "module %q", name)
}

// NewInvalidPrefixError creates an invalid-prefix error with the offending token.
func NewInvalidPrefixError(prefix string) error {
	return Wrapf(ErrInvalidPrefix, "prefix %q", prefix)
}

package domain

import "errors"

// Domain errors represent generation failures.
// Adapters wrap them with context using fmt.Errorf("%w: ...").
var (
	// ErrInvalidInput indicates a malformed request or settings value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a collaborator was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// Generation Errors.

	// ErrInputNotFound indicates the input path does not reference an existing file.
	// This is the one failure callers are expected to handle as a normal outcome.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedInput indicates the input is not valid structured data.
	ErrMalformedInput = errors.New("malformed input")

	// ErrMissingField indicates a required top-level or per-segment field is absent.
	ErrMissingField = errors.New("missing field")

	// ErrRenderFailure indicates the output document could not be written.
	ErrRenderFailure = errors.New("render failure")
)

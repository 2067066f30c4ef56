package leanshape

import (
	"errors"
)

var (
	// ErrEmptyIDFieldName is returned when an empty primary identifier field name is supplied.
	ErrEmptyIDFieldName = errors.New("empty id field name supplied")

	// ErrEmptyVersionFieldName is returned when an empty version field name is supplied.
	ErrEmptyVersionFieldName = errors.New("empty version field name supplied")

	// ErrNilCollection is returned when a nil collection handle is supplied.
	ErrNilCollection = errors.New("nil collection supplied")

	// ErrInvalidOptionsJSON is returned when a dynamic option bag is not valid JSON.
	ErrInvalidOptionsJSON = errors.New("options json is not valid")

	// ErrUnsupportedResultShape is returned when a query result is of a type whose
	// mutations could not be observed by the caller, so shaping it in place is impossible.
	ErrUnsupportedResultShape = errors.New("unsupported query result shape")

	// ErrPostProcessingFailed is returned when an unexpected failure occurs while
	// shaping a query result; partial mutations up to the failure point are kept.
	ErrPostProcessingFailed = errors.New("post-processing query result failed")

	// ErrQueryingDocumentsFailed is returned when the underlying driver query fails.
	ErrQueryingDocumentsFailed = errors.New("querying documents failed")

	// ErrDecodingDocumentFailed is returned when a returned document cannot be decoded.
	ErrDecodingDocumentFailed = errors.New("decoding document failed")
)

// Continuation receives the outcome of one post-processing pass.
// An engine invokes it exactly once per pass: with nil on success, or with the
// error that caused the pass to fail.
type Continuation func(err error)

package pipeline

import "errors"

// Error taxonomy for a single export call. All errors are scoped to the
// call that produced them; there is no partial output and no retry.
var (
	// ErrDecodeFailed is returned when the source image cannot be decoded.
	ErrDecodeFailed = errors.New("pipeline: source image decode failed")

	// ErrSurfaceUnsupported is returned when a drawing surface cannot be
	// created, which signals environment incapability rather than bad input.
	ErrSurfaceUnsupported = errors.New("pipeline: drawing surface unavailable")

	// ErrEncodeFailed is returned when the final surface cannot be
	// serialized to the requested format.
	ErrEncodeFailed = errors.New("pipeline: image encode failed")
)

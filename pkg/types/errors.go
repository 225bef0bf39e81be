// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds raised by the conversion pipeline. Each failure site wraps
// one of these with fmt.Errorf("%w: ...") so callers can dispatch with
// errors.Is while the message carries the offending value. Conversion is
// one-shot and deterministic; none of these are retryable.
var (
	// ErrDocument marks an input container that cannot be opened or is
	// structurally invalid DXF.
	ErrDocument = errors.New("invalid drawing document")

	// ErrShape marks a drawing whose polyline count cannot describe a
	// single-element airfoil.
	ErrShape = errors.New("unexpected drawing shape")

	// ErrDegenerateGeometry marks geometry the normalizer cannot scale,
	// such as a zero chord length.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrUnsupportedFormat marks an unknown output format selector.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrIO marks a failure writing the output file.
	ErrIO = errors.New("output write failed")
)

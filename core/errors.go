package core

import "errors"

// Sentinel errors for core graph validation.
var (
	// ErrNegativeVertices indicates a vertex count below zero.
	ErrNegativeVertices = errors.New("core: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")
)

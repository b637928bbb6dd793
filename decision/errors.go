package decision

import "errors"

// Sentinel errors for decision-tree construction and lookup.
var (
	// ErrUnsupportedSize indicates a graph with more vertices than the
	// collection was built for, or a build request beyond MaxSupported.
	ErrUnsupportedSize = errors.New("decision: unsupported graph size")

	// ErrNotSimple indicates a self-loop or two edges on the same vertex pair.
	ErrNotSimple = errors.New("decision: graph is not simple")

	// ErrUnknownStructure indicates a structure missing from the collection.
	ErrUnknownStructure = errors.New("decision: unknown graph structure")

	// ErrNoDecisionTree indicates that no tree was found up to the depth
	// limit; it signals a broken invariant rather than bad input.
	ErrNoDecisionTree = errors.New("decision: no decision tree found")

	// ErrCorruptCollection indicates a persisted collection that fails validation.
	ErrCorruptCollection = errors.New("decision: corrupt collection")
)

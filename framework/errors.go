package framework

import "errors"

var (
	// ErrEmptyCatalog is returned when a catalog would hold zero frameworks.
	// It is the only fatal configuration error of the registry.
	ErrEmptyCatalog = errors.New("framework: catalog has no frameworks")

	// ErrEmptyName indicates a framework without a name.
	ErrEmptyName = errors.New("framework: name is empty")

	// ErrMalformedSource indicates a catalog source that could not be decoded.
	ErrMalformedSource = errors.New("framework: malformed catalog source")

	// ErrNilPersister is returned by Persist/Restore given a nil adapter.
	ErrNilPersister = errors.New("framework: persister is nil")
)

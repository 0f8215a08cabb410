package breakdown

import "errors"

var (
	// ErrContainerNotFound is returned when the panel container is missing.
	ErrContainerNotFound = errors.New("breakdown container not found")

	// ErrUnknownPolicy is returned by ParseTotalPolicy.
	ErrUnknownPolicy = errors.New("unknown total policy")
)

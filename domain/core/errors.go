package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrLabelDomain    = errors.New("labels must be in {0,1}")
	ErrBadObservation = errors.New("bad value for Bernoulli observation (0, 1)")
	ErrShapeMismatch  = errors.New("shape mismatch between link values and labels")

	// Capability errors
	ErrLinkNotSupported = errors.New("no closed form for link function")
)

// Error constructors with context
func NewShapeMismatchError(nLinkF, nLabels int) error {
	return fmt.Errorf("%w: %d link values vs %d labels", ErrShapeMismatch, nLinkF, nLabels)
}

func NewLabelDomainError(index int, value float64) error {
	return fmt.Errorf("%w: element %d is %v", ErrLabelDomain, index, value)
}

func NewBadObservationError(value float64) error {
	return fmt.Errorf("%w: got %v", ErrBadObservation, value)
}

func NewLinkNotSupportedError(op, link string) error {
	return fmt.Errorf("%w: %s with %s link", ErrLinkNotSupported, op, link)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLabelDomain) ||
		errors.Is(err, ErrBadObservation) ||
		errors.Is(err, ErrShapeMismatch)
}

func IsNotSupportedError(err error) bool {
	return errors.Is(err, ErrLinkNotSupported)
}

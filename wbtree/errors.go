package wbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("wbtree: invalid configuration")
	// ErrInvariantViolated signals a structural invariant violation detected
	// by Check. It indicates an implementation defect, not a runtime error.
	ErrInvariantViolated = errors.New("wbtree: invariant violated")
)

package wbtree

import "fmt"

// Config configures a weight-balanced tree.
type Config[K any] struct {
	// Compare is a total order on keys: negative if a sorts before b, zero
	// if both are equal, positive if a sorts after b.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}

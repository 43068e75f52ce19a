package binomial

import (
	"cmp"
	"fmt"
)

// Config configures a binomial heap.
type Config[K any] struct {
	// Compare defines a total order on keys. It returns a negative number
	// if a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: key comparator is required", ErrInvalidConfig)
	}
	return nil
}

// OrderedConfig returns a configuration for keys with a natural order.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

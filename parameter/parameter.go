// Package parameter contains the option bags that configure training algorithms. Every bag carries the
// seed that makes shuffles, partitions and bootstrap samples reproducible.
package parameter

import "github.com/pkg/errors"

// ErrInvalidConfiguration is returned when a parameter bag, or a run strategy, is configured with values
// that cannot produce a result (non-positive epochs, ensemble sizes or fold counts, and the like).
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Parameter is the part of every parameter bag that training and experiments depend on.
type Parameter interface {
	// Seed is used for every random number generator seeded by the algorithm.
	Seed() int64
	// Validate reports whether the parameters can be used for training.
	Validate() error
}

// Base is a parameter bag holding only a seed.
type Base struct {
	seed int64
}

// New creates a parameter bag holding only a seed.
func New(seed int64) Base {
	return Base{seed: seed}
}

func (p Base) Seed() int64 {
	return p.seed
}

func (p Base) Validate() error {
	return nil
}

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}

package space

import "errors"

// Errors reported by convention construction and mapping. All of them signal
// programmer or input mistakes, not transient faults, and are raised
// synchronously at the point of the violated contract.
var (
	// ErrInvalidDirection means an origin specifier's leading character is
	// not one of the six recognized direction codes (p, a, s, i, l, r).
	ErrInvalidDirection = errors.New("invalid anatomical direction")

	// ErrIncompleteOrientation means the origin specification does not cover
	// the three direction families exactly once: an axis is missing, or two
	// axes name directions from the same family.
	ErrIncompleteOrientation = errors.New("incomplete orientation")

	// ErrIncompatibleSpaces means source and target conventions do not cover
	// the same direction families, so no axis correspondence exists. It is
	// unreachable for conventions built by this package but is checked
	// rather than assumed.
	ErrIncompatibleSpaces = errors.New("incompatible space conventions")

	// ErrMissingShape means a transformation needs a per-axis voxel extent
	// that was never supplied at construction time.
	ErrMissingShape = errors.New("missing source shape")
)

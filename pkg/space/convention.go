package space

import "fmt"

// Params holds the optional geometry of a space convention. The zero value
// of a field means "not specified": a zero shape entry marks an unknown
// extent and a zero resolution entry defaults to 1.
type Params struct {
	// Origin specifies, per storage axis, the anatomical direction that
	// index 0 points to. Accepted forms: a single 3-letter string (e.g.
	// "asl"), three single letters, or three full direction words. Matching
	// is case-insensitive and only the first character of each specifier is
	// significant.
	Origin []string

	// Shape is the voxel extent of the bounding box along each storage
	// axis. A zero entry means the extent is unknown; flip translations
	// cannot be computed without it.
	Shape [3]int

	// Resolution is the physical spacing along each storage axis. It is
	// stored for callers but plays no role in the geometric mapping.
	Resolution [3]float64
}

// Convention describes one anatomical space convention: for each of the
// three storage axes of a volume, the direction its origin points to.
//
// E.g., the Allen Brain atlas space (anterior→posterior, superior→inferior,
// left→right) is described by any of:
//
//	space.New("asl")
//	space.New("a", "s", "l")
//	space.New("anterior", "superior", "left")
//
// A Convention is an immutable value object; it is safe to share across
// goroutines and reuse for any number of mappings.
type Convention struct {
	// axes holds the origin-facing direction of each storage axis. The
	// opposite end of the axis is always the direction's family opposite,
	// so this fully determines the conventional 2-letter axis codes.
	axes       [3]Direction
	shape      [3]int
	resolution [3]float64
}

// New builds a Convention from an origin specification with unknown shape
// and unit resolution. See Params.Origin for the accepted forms.
func New(origin ...string) (*Convention, error) {
	return NewFromParams(&Params{Origin: origin})
}

// NewFromParams builds a Convention with explicit geometry.
//
// It fails with ErrInvalidDirection when a specifier is not recognized and
// with ErrIncompleteOrientation when the three specifiers do not cover the
// three direction families exactly once.
func NewFromParams(p *Params) (*Convention, error) {
	specs := p.Origin
	if len(specs) == 1 {
		// Single compact string: one letter per axis.
		specs = splitLetters(specs[0])
	}

	if len(specs) != 3 {
		return nil, fmt.Errorf("got %d axis specifiers, want 3: %w",
			len(specs), ErrIncompleteOrientation)
	}

	c := &Convention{shape: p.Shape}

	var seen [3]bool
	for i, spec := range specs {
		d, err := ParseDirection(spec)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}

		if seen[d.Family()] {
			return nil, fmt.Errorf("axes %v repeat the %s family: %w",
				specs, d.Family(), ErrIncompleteOrientation)
		}
		seen[d.Family()] = true

		c.axes[i] = d
	}

	for i, r := range p.Resolution {
		if r == 0 {
			r = 1
		}
		c.resolution[i] = r
	}

	return c, nil
}

func splitLetters(s string) []string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, string(r))
	}
	return parts
}

// Axes returns the conventional 2-letter code of each storage axis: the
// origin-facing direction followed by its opposite (e.g. "pa" for an axis
// running posterior→anterior).
func (c *Convention) Axes() [3]string {
	var codes [3]string
	for i, d := range c.axes {
		codes[i] = d.Letter() + d.Opposite().Letter()
	}
	return codes
}

// AxesOrder returns the direction family of each storage axis, in storage
// order.
func (c *Convention) AxesOrder() [3]Family {
	var order [3]Family
	for i, d := range c.axes {
		order[i] = d.Family()
	}
	return order
}

// Origin returns the origin-facing direction of each storage axis.
func (c *Convention) Origin() [3]Direction {
	return c.axes
}

// Shape returns the per-axis voxel extents and whether all three are known.
func (c *Convention) Shape() ([3]int, bool) {
	return c.shape, c.shape[0] > 0 && c.shape[1] > 0 && c.shape[2] > 0
}

// Resolution returns the physical spacing along each storage axis.
func (c *Convention) Resolution() [3]float64 {
	return c.resolution
}

// String returns the compact origin form, e.g. "asl".
func (c *Convention) String() string {
	return c.axes[0].Letter() + c.axes[1].Letter() + c.axes[2].Letter()
}

// MapTo computes the axis reordering and flips required to move a stack
// from this convention to the target convention.
//
// order is a permutation of {0, 1, 2}: order[i] is the index, in this
// convention, of the axis belonging to the same family as target axis i.
// flips is aligned to the target's axis order: flips[i] is true when the
// matched source axis points the opposite way and must be reversed.
//
// Both results are pure functions of the two conventions. The defensive
// ErrIncompatibleSpaces is returned if the conventions do not cover the
// same families, which cannot happen for conventions built by New.
func (c *Convention) MapTo(target *Convention) (order [3]int, flips [3]bool, err error) {
	srcFamilies := c.AxesOrder()

	for ti, d := range target.axes {
		si := -1
		for i, fam := range srcFamilies {
			if fam == d.Family() {
				si = i
				break
			}
		}
		if si < 0 {
			return order, flips, fmt.Errorf("no %s axis in source %q: %w",
				d.Family(), c, ErrIncompatibleSpaces)
		}

		order[ti] = si
		flips[ti] = c.axes[si] != d
	}

	return order, flips, nil
}

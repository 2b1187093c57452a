// Package space describes anatomical orientation conventions for 3D volumes
// and computes the axis permutations and flips needed to move data between
// two conventions. It drops the infinitely confusing (x, y, z) for a semantic
// specification of axis ordering and orientation: a convention states, for
// each storage axis, which anatomical direction index 0 points to.
//
// Transformations produced by this package ARE NOT proper registrations from
// space a to space b. They reorient a stack so that its axes match the
// convention of space b, which is a useful pre-step for an affine
// registration but does not implement one.
package space

import (
	"fmt"
	"strings"
)

// Family identifies one of the three opposing anatomical direction pairs.
// Every storage axis of a volume belongs to exactly one family.
type Family int

const (
	// Sagittal is the anterior/posterior pair.
	Sagittal Family = iota

	// Vertical is the superior/inferior pair.
	Vertical

	// Frontal is the left/right pair.
	Frontal
)

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case Sagittal:
		return "sagittal"
	case Vertical:
		return "vertical"
	case Frontal:
		return "frontal"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Direction is one of the six anatomical directions. Each direction belongs
// to exactly one Family and has exactly one Opposite within that family.
type Direction int

const (
	Anterior Direction = iota
	Posterior
	Superior
	Inferior
	Left
	Right
)

// directionInfo is the closed lookup table tying each direction to its
// one-letter code, full name, family and opposite.
var directionInfo = [...]struct {
	letter   byte
	name     string
	family   Family
	opposite Direction
}{
	Anterior:  {'a', "Anterior", Sagittal, Posterior},
	Posterior: {'p', "Posterior", Sagittal, Anterior},
	Superior:  {'s', "Superior", Vertical, Inferior},
	Inferior:  {'i', "Inferior", Vertical, Superior},
	Left:      {'l', "Left", Frontal, Right},
	Right:     {'r', "Right", Frontal, Left},
}

// Letter returns the single-letter code of the direction (e.g. "a").
// The letter is the semantically load-bearing form.
func (d Direction) Letter() string {
	return string(directionInfo[d].letter)
}

// String returns the full direction name (e.g. "Anterior").
func (d Direction) String() string {
	return directionInfo[d].name
}

// Family returns the opposing pair the direction belongs to.
func (d Direction) Family() Family {
	return directionInfo[d].family
}

// Opposite returns the other member of the direction's family.
func (d Direction) Opposite() Direction {
	return directionInfo[d].opposite
}

// ParseDirection resolves a direction specifier: a single letter, a full
// direction word, or anything beginning with a recognized letter. Matching
// is case-insensitive and only the first character is consulted.
func ParseDirection(spec string) (Direction, error) {
	if spec == "" {
		return 0, fmt.Errorf("empty direction specifier: %w", ErrInvalidDirection)
	}

	initial := strings.ToLower(spec)[0]
	for d := range directionInfo {
		if directionInfo[d].letter == initial {
			return Direction(d), nil
		}
	}

	return 0, fmt.Errorf("unknown direction %q (want one of p, a, s, i, l, r): %w",
		spec, ErrInvalidDirection)
}

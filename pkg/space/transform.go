package space

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"anatspace/pkg/volume"
)

// MapVolumeTo transposes and flips a volume so it matches the target
// convention: reading the result in the target's axis order and direction
// yields anatomically consistent data.
//
// When copy is true the input volume is left untouched. When copy is false
// the result may alias the input where storage allows (flips without an
// axis permutation reverse the caller's data in place); callers sharing one
// volume across goroutines must serialize such in-place mappings.
func (c *Convention) MapVolumeTo(vol *volume.Volume, target *Convention, copy bool) (*volume.Volume, error) {
	order, flips, err := c.MapTo(target)
	if err != nil {
		return nil, err
	}

	if copy {
		vol = vol.Clone()
	}

	vol = vol.Transpose(order)

	flipAxes := make([]int, 0, 3)
	for i, f := range flips {
		if f {
			flipAxes = append(flipAxes, i)
		}
	}

	return vol.Flip(flipAxes...), nil
}

// TransformationMatrixTo returns the 4×4 homogeneous matrix encoding the
// same permutation and flips as MapVolumeTo as an affine map on voxel
// indices: multiplying it with a column vector [i0, i1, i2, 1] of source
// indices yields the corresponding target indices.
//
// Flipped axes need the source voxel extent to compute their translation
// term, so the mapping fails with ErrMissingShape when any flip is required
// and the source shape was not fully supplied at construction.
func (c *Convention) TransformationMatrixTo(target *Convention) (*mat.Dense, error) {
	order, flips, err := c.MapTo(target)
	if err != nil {
		return nil, err
	}

	m := mat.NewDense(4, 4, nil)
	m.Set(3, 3, 1)

	for a := 0; a < 3; a++ {
		b := order[a]
		if !flips[a] {
			m.Set(a, b, 1)
			continue
		}

		if _, ok := c.Shape(); !ok {
			return nil, fmt.Errorf("flip of %s axis needs the source extents: %w",
				c.axes[b].Family(), ErrMissingShape)
		}

		// Reversing an axis of extent n maps index x to n-1-x.
		m.Set(a, b, -1)
		m.Set(a, 3, float64(c.shape[b]-1))
	}

	return m, nil
}

// MapPointsTo maps an (n×3) matrix of voxel-index coordinates from this
// convention to the target convention, applying the same permutation and
// flips that MapVolumeTo applies to volume content. Like the matrix form it
// fails with ErrMissingShape when a flip is required and the source extents
// are unknown.
func (c *Convention) MapPointsTo(pts *mat.Dense, target *Convention) (*mat.Dense, error) {
	rows, cols := pts.Dims()
	if cols != 3 {
		return nil, fmt.Errorf("points matrix is %d×%d, want n×3", rows, cols)
	}

	order, flips, err := c.MapTo(target)
	if err != nil {
		return nil, err
	}

	for _, f := range flips {
		if f {
			if _, ok := c.Shape(); !ok {
				return nil, fmt.Errorf("mapping points with flips needs the source extents: %w",
					ErrMissingShape)
			}
			break
		}
	}

	out := mat.NewDense(rows, 3, nil)
	for i := 0; i < rows; i++ {
		for a := 0; a < 3; a++ {
			b := order[a]
			x := pts.At(i, b)
			if flips[a] {
				x = float64(c.shape[b]-1) - x
			}
			out.Set(i, a, x)
		}
	}

	return out, nil
}

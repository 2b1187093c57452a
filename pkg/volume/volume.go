// Package volume provides the dense 3D array engine used for reorientation:
// flat row-major voxel storage with axis transposition and flipping.
package volume

import "fmt"

// Volume is a dense 3D scalar volume stored as a 1D array in row-major
// order: the last axis varies fastest.
type Volume struct {
	// Data is the voxel data, len = Shape[0]*Shape[1]*Shape[2].
	Data []float64

	// Shape is the voxel extent along each axis.
	Shape [3]int

	// VoxelSize is the physical size of each voxel along each axis in mm.
	VoxelSize [3]float64
}

// New allocates a zero-filled volume of the given shape with unit voxels.
func New(shape [3]int) *Volume {
	for _, n := range shape {
		if n <= 0 {
			panic(fmt.Sprintf("volume: non-positive extent in shape %v", shape))
		}
	}
	return &Volume{
		Data:      make([]float64, shape[0]*shape[1]*shape[2]),
		Shape:     shape,
		VoxelSize: [3]float64{1, 1, 1},
	}
}

func (v *Volume) index(i, j, k int) int {
	return (i*v.Shape[1]+j)*v.Shape[2] + k
}

// At returns the voxel value at the given axis indices.
func (v *Volume) At(i, j, k int) float64 {
	return v.Data[v.index(i, j, k)]
}

// Set stores a voxel value at the given axis indices.
func (v *Volume) Set(i, j, k int, val float64) {
	v.Data[v.index(i, j, k)] = val
}

// Clone returns an independent deep copy of the volume.
func (v *Volume) Clone() *Volume {
	out := &Volume{
		Data:      make([]float64, len(v.Data)),
		Shape:     v.Shape,
		VoxelSize: v.VoxelSize,
	}
	copy(out.Data, v.Data)
	return out
}

// Transpose reorders the volume's axes: axis a of the result is axis
// order[a] of the input. The identity permutation returns the receiver
// unchanged; any other permutation allocates, since flat row-major storage
// cannot express a transposed view. Panics on an invalid permutation.
func (v *Volume) Transpose(order [3]int) *Volume {
	var seen [3]bool
	for _, a := range order {
		if a < 0 || a > 2 || seen[a] {
			panic(fmt.Sprintf("volume: invalid axis permutation %v", order))
		}
		seen[a] = true
	}

	if order == [3]int{0, 1, 2} {
		return v
	}

	out := &Volume{
		Data:  make([]float64, len(v.Data)),
		Shape: [3]int{v.Shape[order[0]], v.Shape[order[1]], v.Shape[order[2]]},
		VoxelSize: [3]float64{
			v.VoxelSize[order[0]], v.VoxelSize[order[1]], v.VoxelSize[order[2]],
		},
	}

	var s [3]int
	for s[0] = 0; s[0] < v.Shape[0]; s[0]++ {
		for s[1] = 0; s[1] < v.Shape[1]; s[1]++ {
			for s[2] = 0; s[2] < v.Shape[2]; s[2]++ {
				out.Data[out.index(s[order[0]], s[order[1]], s[order[2]])] =
					v.Data[v.index(s[0], s[1], s[2])]
			}
		}
	}

	return out
}

// Flip reverses the voxel order along each of the given axes, in place,
// and returns the receiver. Panics on an out-of-range axis.
func (v *Volume) Flip(axes ...int) *Volume {
	for _, a := range axes {
		if a < 0 || a > 2 {
			panic(fmt.Sprintf("volume: flip axis %d out of range", a))
		}
		v.flipAxis(a)
	}
	return v
}

func (v *Volume) flipAxis(axis int) {
	n := v.Shape[axis]

	var c [3]int
	for c[0] = 0; c[0] < v.Shape[0]; c[0]++ {
		for c[1] = 0; c[1] < v.Shape[1]; c[1]++ {
			for c[2] = 0; c[2] < v.Shape[2]; c[2]++ {
				m := c
				m[axis] = n - 1 - c[axis]
				if c[axis] < m[axis] {
					a := v.index(c[0], c[1], c[2])
					b := v.index(m[0], m[1], m[2])
					v.Data[a], v.Data[b] = v.Data[b], v.Data[a]
				}
			}
		}
	}
}

// Equal reports whether two volumes have identical shape and voxel data.
func (v *Volume) Equal(o *Volume) bool {
	if v.Shape != o.Shape {
		return false
	}
	for i := range v.Data {
		if v.Data[i] != o.Data[i] {
			return false
		}
	}
	return true
}

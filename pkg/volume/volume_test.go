package volume

import (
	"path/filepath"
	"testing"
)

func sequentialVolume(shape [3]int) *Volume {
	v := New(shape)
	for i := range v.Data {
		v.Data[i] = float64(i)
	}
	return v
}

// TestNewVolume verifies allocation, indexing and voxel access.
func TestNewVolume(t *testing.T) {
	v := New([3]int{2, 3, 4})

	if len(v.Data) != 24 {
		t.Errorf("Expected 24 voxels, got %d", len(v.Data))
	}
	if v.VoxelSize != [3]float64{1, 1, 1} {
		t.Errorf("Expected unit voxel size, got %v", v.VoxelSize)
	}

	v.Set(1, 2, 3, 42)
	if got := v.At(1, 2, 3); got != 42 {
		t.Errorf("Expected 42 at [1 2 3], got %f", got)
	}
	// Row-major order: the last axis varies fastest.
	if got := v.Data[1*12+2*4+3]; got != 42 {
		t.Errorf("Expected row-major layout, got %f at linear index", got)
	}
}

// TestTranspose verifies axis reordering of data, shape and voxel size.
func TestTranspose(t *testing.T) {
	v := sequentialVolume([3]int{2, 3, 4})
	v.VoxelSize = [3]float64{1, 2, 3}

	out := v.Transpose([3]int{2, 0, 1})

	if out.Shape != [3]int{4, 2, 3} {
		t.Errorf("Expected shape [4 2 3], got %v", out.Shape)
	}
	if out.VoxelSize != [3]float64{3, 1, 2} {
		t.Errorf("Expected voxel size [3 1 2], got %v", out.VoxelSize)
	}

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if out.At(k, i, j) != v.At(i, j, k) {
					t.Errorf("Voxel [%d %d %d] misplaced by transpose", i, j, k)
				}
			}
		}
	}
}

// TestTransposeIdentity verifies that the identity permutation does not
// allocate a new volume.
func TestTransposeIdentity(t *testing.T) {
	v := sequentialVolume([3]int{2, 3, 4})
	if out := v.Transpose([3]int{0, 1, 2}); out != v {
		t.Errorf("Expected identity transpose to return the receiver")
	}
}

// TestTransposePanics verifies rejection of invalid permutations.
func TestTransposePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for invalid permutation")
		}
	}()
	sequentialVolume([3]int{2, 3, 4}).Transpose([3]int{0, 0, 2})
}

// TestFlip verifies in-place axis reversal.
func TestFlip(t *testing.T) {
	v := sequentialVolume([3]int{2, 3, 4})
	original := v.Clone()

	v.Flip(1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if v.At(i, j, k) != original.At(i, 2-j, k) {
					t.Errorf("Voxel [%d %d %d] misplaced by flip", i, j, k)
				}
			}
		}
	}

	// Flipping twice restores the original.
	v.Flip(1)
	if !v.Equal(original) {
		t.Errorf("Double flip did not restore the volume")
	}

	// Multiple axes in one call.
	v.Flip(0, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if v.At(i, j, k) != original.At(1-i, j, 3-k) {
					t.Errorf("Voxel [%d %d %d] misplaced by double-axis flip", i, j, k)
				}
			}
		}
	}
}

// TestClone verifies deep copying.
func TestClone(t *testing.T) {
	v := sequentialVolume([3]int{2, 3, 4})
	c := v.Clone()

	c.Set(0, 0, 0, 99)
	if v.At(0, 0, 0) == 99 {
		t.Errorf("Clone shares storage with the original")
	}
	if c.Shape != v.Shape || c.VoxelSize != v.VoxelSize {
		t.Errorf("Clone metadata differs from the original")
	}
}

// TestRawRoundTrip verifies writing and re-reading a raw volume file.
func TestRawRoundTrip(t *testing.T) {
	v := sequentialVolume([3]int{2, 3, 4})
	path := filepath.Join(t.TempDir(), "vol.raw")

	if err := WriteRaw(v, path); err != nil {
		t.Fatalf("WriteRaw failed: %v", err)
	}

	loaded, err := ReadRaw(path, v.Shape)
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if !loaded.Equal(v) {
		t.Errorf("Loaded volume differs from the written one")
	}

	// A mismatched shape must be rejected.
	if _, err := ReadRaw(path, [3]int{2, 3, 5}); err == nil {
		t.Errorf("Expected an error for a shape/file size mismatch")
	}
}

package volume

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// ReadRaw loads a volume from a headerless binary file of little-endian
// float64 voxels in row-major order. The shape must be supplied by the
// caller and is validated against the file size.
func ReadRaw(path string, shape [3]int) (*Volume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading volume file: %w", err)
	}

	v := New(shape)
	want := len(v.Data) * 8
	if len(data) != want {
		return nil, fmt.Errorf("volume file %s holds %d bytes, want %d for shape %v",
			path, len(data), want, shape)
	}

	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, v.Data); err != nil {
		return nil, fmt.Errorf("error decoding volume data: %w", err)
	}

	return v, nil
}

// WriteRaw saves the volume's voxel data as little-endian float64 values in
// row-major order, without a header.
func WriteRaw(v *Volume, path string) error {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v.Data); err != nil {
		return fmt.Errorf("error encoding volume data: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing volume file: %w", err)
	}

	return nil
}

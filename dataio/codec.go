package dataio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-dataset/array"
)

// ADSA array format, all fields little-endian:
//   - 4 bytes: magic "ADSA"
//   - uint16: format version
//   - uint8: element type (1 = float64)
//   - uint8: rank
//   - rank × uint64: dimensions
//   - product(dims) × float64: row-major values
const (
	codecMagic   = "ADSA"
	codecVersion = uint16(1)
	dtypeFloat64 = uint8(1)
	maxRank      = 255
	readChunk    = 1 << 16
)

// WriteArray encodes a in ADSA format.
func WriteArray(w io.Writer, a *array.Array) error {
	shape := a.Shape()
	if len(shape) > maxRank {
		return fmt.Errorf("%w: rank %d exceeds %d", ErrFormat, len(shape), maxRank)
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(codecMagic); err != nil {
		return err
	}

	header := []any{codecVersion, dtypeFloat64, uint8(len(shape))}
	for _, v := range header {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	for _, d := range shape {
		if err := binary.Write(bw, binary.LittleEndian, uint64(d)); err != nil {
			return fmt.Errorf("write shape: %w", err)
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, a.Data()); err != nil {
		return fmt.Errorf("write values: %w", err)
	}

	return bw.Flush()
}

// ReadArray decodes one ADSA array from r.
func ReadArray(r io.Reader) (*array.Array, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(codecMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("%w: read magic: %v", ErrFormat, err)
	}
	if string(magic) != codecMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, magic)
	}

	var hdr struct {
		Version uint16
		DType   uint8
		Rank    uint8
	}
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrFormat, err)
	}
	if hdr.Version != codecVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, hdr.Version)
	}
	if hdr.DType != dtypeFloat64 {
		return nil, fmt.Errorf("%w: unsupported element type %d", ErrFormat, hdr.DType)
	}
	if hdr.Rank == 0 {
		return nil, fmt.Errorf("%w: rank 0", ErrFormat)
	}

	dims := make([]uint64, hdr.Rank)
	if err := binary.Read(br, binary.LittleEndian, dims); err != nil {
		return nil, fmt.Errorf("%w: read shape: %v", ErrFormat, err)
	}

	shape := make([]int, len(dims))
	size := uint64(1)
	for i, d := range dims {
		if d > math.MaxInt32 {
			return nil, fmt.Errorf("%w: dimension %d too large", ErrFormat, d)
		}
		size *= d
		if size > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %v values exceed the size limit", ErrFormat, dims)
		}
		shape[i] = int(d)
	}

	// Allocation grows with the values actually read, not the header size.
	data := make([]float64, 0, min(size, readChunk))
	chunk := make([]float64, min(size, readChunk))
	for remaining := size; remaining > 0; {
		n := min(remaining, readChunk)
		if err := binary.Read(br, binary.LittleEndian, chunk[:n]); err != nil {
			return nil, fmt.Errorf("%w: read values at %d of %d: %v", ErrFormat, uint64(len(data)), size, err)
		}
		data = append(data, chunk[:n]...)
		remaining -= n
	}

	return array.New(shape, data)
}

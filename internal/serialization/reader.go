package serialization

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/axon-ml/axon/internal/ndarray"
)

// Load reads every array from the .axon archive at path.
func Load(path string) (map[string]*ndarray.Array, error) {
	f, err := os.Open(path) //nolint:gosec // G304: archive paths come from the caller
	if err != nil {
		return nil, fmt.Errorf("serialization: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses an archive and reconstructs its arrays. The data section
// digest is verified before anything is decoded, so a truncated or
// corrupted archive fails as a whole instead of yielding partial
// results.
func Read(r io.Reader) (map[string]*ndarray.Array, error) {
	var magicBuf [4]byte
	if _, err := io.ReadFull(r, magicBuf[:]); err != nil {
		return nil, fmt.Errorf("serialization: read magic: %w", err)
	}
	if string(magicBuf[:]) != archiveMagic {
		return nil, fmt.Errorf("serialization: got %q: %w", magicBuf[:], ErrInvalidMagic)
	}

	var ver uint32
	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return nil, fmt.Errorf("serialization: read version: %w", err)
	}
	if ver != formatVersion {
		return nil, fmt.Errorf("serialization: version %d: %w", ver, ErrUnsupportedVersion)
	}

	var headerLen uint64
	if err := binary.Read(r, binary.LittleEndian, &headerLen); err != nil {
		return nil, fmt.Errorf("serialization: read header length: %w", err)
	}
	if headerLen > maxHeaderSize {
		return nil, fmt.Errorf("serialization: header claims %d bytes: %w", headerLen, ErrMalformedHeader)
	}
	headerJSON := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, fmt.Errorf("serialization: read header: %w", err)
	}
	var hdr header
	if err := json.Unmarshal(headerJSON, &hdr); err != nil {
		return nil, fmt.Errorf("serialization: decode header: %v: %w", err, ErrMalformedHeader)
	}

	if pad := paddingAfter(preludeSize + int64(headerLen)); pad > 0 {
		if _, err := io.CopyN(io.Discard, r, pad); err != nil {
			return nil, fmt.Errorf("serialization: skip padding: %w", err)
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("serialization: read data: %w", err)
	}
	if sum := fmt.Sprintf("%x", sha256.Sum256(data)); sum != hdr.Checksum {
		return nil, fmt.Errorf("serialization: data digest %s does not match header %s: %w",
			sum, hdr.Checksum, ErrChecksumMismatch)
	}

	arrays := make(map[string]*ndarray.Array, len(hdr.Arrays))
	for _, meta := range hdr.Arrays {
		if _, dup := arrays[meta.Name]; dup {
			return nil, fmt.Errorf("serialization: duplicate array %q: %w", meta.Name, ErrMalformedHeader)
		}
		arr, err := decodeArray(meta, data)
		if err != nil {
			return nil, err
		}
		arrays[meta.Name] = arr
	}
	return arrays, nil
}

// decodeArray reconstructs one array from its window of the data
// section.
func decodeArray(meta arrayMeta, data []byte) (*ndarray.Array, error) {
	dt, ok := dtypeByName[meta.DType]
	if !ok {
		return nil, fmt.Errorf("serialization: array %q has unknown dtype %q: %w",
			meta.Name, meta.DType, ErrMalformedHeader)
	}
	total := int64(len(data))
	if meta.Offset < 0 || meta.Size < 0 || meta.Size > total || meta.Offset > total-meta.Size {
		return nil, fmt.Errorf("serialization: array %q window [%d, %d) outside %d data bytes: %w",
			meta.Name, meta.Offset, meta.Offset+meta.Size, total, ErrMalformedHeader)
	}

	vals, err := decodeElements(dt, data[meta.Offset:meta.Offset+meta.Size])
	if err != nil {
		return nil, fmt.Errorf("serialization: array %q: %w", meta.Name, err)
	}
	shape := ndarray.Shape(slices.Clone(meta.Shape))
	arr, err := ndarray.FromSlice(vals, shape, ndarray.WithDType(dt))
	if err != nil {
		return nil, fmt.Errorf("serialization: array %q: %w", meta.Name, err)
	}
	return arr, nil
}

package serialization

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/axon-ml/axon/internal/ndarray"
)

// Save writes the arrays to a new .axon archive at path, replacing any
// existing file.
func Save(path string, arrays map[string]*ndarray.Array) error {
	f, err := os.Create(path) //nolint:gosec // G304: archive paths come from the caller
	if err != nil {
		return fmt.Errorf("serialization: create %s: %w", path, err)
	}
	if err := Write(f, arrays); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("serialization: close %s: %w", path, err)
	}
	return nil
}

// Write emits an archive holding the arrays, in name order. Views are
// written as the elements they expose.
func Write(w io.Writer, arrays map[string]*ndarray.Array) error {
	names := make([]string, 0, len(arrays))
	for name, arr := range arrays {
		if name == "" {
			return fmt.Errorf("serialization: empty array name: %w", ndarray.ErrInvalidParameter)
		}
		if arr == nil {
			return fmt.Errorf("serialization: array %q is nil: %w", name, ndarray.ErrInvalidParameter)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	var data bytes.Buffer
	metas := make([]arrayMeta, 0, len(names))
	for _, name := range names {
		arr := arrays[name]
		elems, err := encodeElements(arr.DType(), arr.Values())
		if err != nil {
			return fmt.Errorf("serialization: array %q: %w", name, err)
		}
		metas = append(metas, arrayMeta{
			Name:   name,
			DType:  arr.DType().String(),
			Shape:  slices.Clone([]int(arr.Shape())),
			Offset: int64(data.Len()),
			Size:   int64(len(elems)),
		})
		data.Write(elems)
	}

	hdr := header{
		Version:   formatVersion,
		CreatedAt: time.Now().UTC(),
		Arrays:    metas,
		Checksum:  fmt.Sprintf("%x", sha256.Sum256(data.Bytes())),
	}
	headerJSON, err := json.Marshal(hdr)
	if err != nil {
		return fmt.Errorf("serialization: marshal header: %w", err)
	}

	if _, err := io.WriteString(w, archiveMagic); err != nil {
		return fmt.Errorf("serialization: write magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(formatVersion)); err != nil {
		return fmt.Errorf("serialization: write version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("serialization: write header length: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("serialization: write header: %w", err)
	}
	if pad := paddingAfter(preludeSize + int64(len(headerJSON))); pad > 0 {
		if _, err := w.Write(make([]byte, pad)); err != nil {
			return fmt.Errorf("serialization: write padding: %w", err)
		}
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return fmt.Errorf("serialization: write data: %w", err)
	}
	return nil
}

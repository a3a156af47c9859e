// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package serialization

import (
	"io"

	"github.com/axon-ml/axon/internal/serialization"
	"github.com/axon-ml/axon/ndarray"
)

// Archive corruption sentinels. Match with errors.Is.
var (
	// ErrInvalidMagic reports a stream that does not start with the
	// .axon magic bytes.
	ErrInvalidMagic = serialization.ErrInvalidMagic

	// ErrUnsupportedVersion reports an archive written by a format
	// revision this build does not understand.
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion

	// ErrMalformedHeader reports metadata that is unreadable or
	// contradicts the data section.
	ErrMalformedHeader = serialization.ErrMalformedHeader

	// ErrChecksumMismatch reports a data section whose digest does not
	// match the one recorded at write time.
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
)

// Save writes the arrays to a new .axon archive at path, replacing any
// existing file.
//
// Example:
//
//	err := serialization.Save("model.axon", map[string]*ndarray.Array{
//	    "weights": weights,
//	})
func Save(path string, arrays map[string]*ndarray.Array) error {
	return serialization.Save(path, arrays)
}

// Load reads every array from the .axon archive at path.
func Load(path string) (map[string]*ndarray.Array, error) {
	return serialization.Load(path)
}

// Write emits an archive holding the arrays to w, in name order.
func Write(w io.Writer, arrays map[string]*ndarray.Array) error {
	return serialization.Write(w, arrays)
}

// Read parses an archive from r and reconstructs its arrays.
func Read(r io.Reader) (map[string]*ndarray.Array, error) {
	return serialization.Read(r)
}

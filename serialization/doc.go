// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package serialization persists arrays to .axon archives for the Axon
// numerical computing library.
//
// # Overview
//
// An archive maps names to arrays. Save and Load work on files, Write
// and Read on streams, so archives can also travel over sockets or sit
// inside larger containers.
//
//	err := serialization.Save("model.axon", map[string]*ndarray.Array{
//	    "weights": weights,
//	    "bias":    bias,
//	})
//	arrays, err := serialization.Load("model.axon")
//
// # Format
//
// Archives are little-endian and self-describing: a fixed magic,
// a format version, a JSON metadata block and a raw data section
// carrying each array's elements in its own dtype. The metadata holds
// a SHA-256 digest of the data section, so corruption and truncation
// are caught when the archive is opened. Views are written as the
// elements they expose; every loaded array comes back dense,
// contiguous and writable.
//
// # Error Handling
//
// Structural failures wrap the package sentinels ErrInvalidMagic,
// ErrUnsupportedVersion, ErrMalformedHeader and ErrChecksumMismatch.
// Failures of the arrays themselves, such as a write handed a nil
// array, wrap the ndarray sentinels.
package serialization

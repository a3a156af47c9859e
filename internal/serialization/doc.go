// Package serialization reads and writes the .axon archive format for
// named arrays.
//
// An archive is a simple binary container:
//
//	[4 bytes: magic "AXON"]
//	[4 bytes: format version (uint32 LE)]
//	[8 bytes: header length (uint64 LE)]
//	[header: JSON metadata]
//	[zero padding to a 64-byte boundary]
//	[data section: element bytes per array, little endian]
//
// The JSON header lists every array with its name, dtype, shape and the
// byte window it occupies in the data section, plus a SHA-256 digest of
// the whole data section that readers verify before decoding anything.
// Arrays are written in name order.
//
// Archives store logical contents: a strided view is saved as the
// elements it exposes, and every loaded array comes back dense,
// contiguous and writable.
package serialization

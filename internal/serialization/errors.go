package serialization

import "errors"

// Sentinel errors for archive parsing; match with errors.Is.
var (
	ErrInvalidMagic       = errors.New("serialization: invalid magic bytes")
	ErrUnsupportedVersion = errors.New("serialization: unsupported format version")
	ErrMalformedHeader    = errors.New("serialization: malformed header")
	ErrChecksumMismatch   = errors.New("serialization: checksum mismatch")
)

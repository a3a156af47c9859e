package serialization

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/x448/float16"

	"github.com/axon-ml/axon/internal/ndarray"
)

const (
	archiveMagic  = "AXON"
	formatVersion = 1

	// Data sections start on a 64-byte boundary.
	dataAlignment = 64

	// A header past this size is treated as corruption rather than
	// allocated blindly.
	maxHeaderSize = 16 << 20
)

// preludeSize is the byte count before the JSON header: magic, version
// and header length.
const preludeSize = 4 + 4 + 8

// header is the JSON metadata block of an archive.
type header struct {
	Version   int         `json:"format_version"`
	CreatedAt time.Time   `json:"created_at"`
	Arrays    []arrayMeta `json:"arrays"`
	Checksum  string      `json:"checksum"`
}

// arrayMeta describes one array's window in the data section.
type arrayMeta struct {
	Name   string `json:"name"`
	DType  string `json:"dtype"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"`
	Size   int64  `json:"size"`
}

// dtypeByName maps serialized dtype tags back to runtime kinds.
var dtypeByName = map[string]ndarray.DataType{
	ndarray.Float64.String(): ndarray.Float64,
	ndarray.Float32.String(): ndarray.Float32,
	ndarray.Float16.String(): ndarray.Float16,
	ndarray.Int32.String():   ndarray.Int32,
	ndarray.Int16.String():   ndarray.Int16,
	ndarray.Int8.String():    ndarray.Int8,
	ndarray.Uint32.String():  ndarray.Uint32,
	ndarray.Uint16.String():  ndarray.Uint16,
	ndarray.Uint8.String():   ndarray.Uint8,
}

// paddingAfter returns how many zero bytes follow a region ending at pos
// to reach the next data alignment boundary.
func paddingAfter(pos int64) int64 {
	return (dataAlignment - pos%dataAlignment) % dataAlignment
}

// encodeElements packs logical element values into little-endian bytes
// of the given dtype.
func encodeElements(dt ndarray.DataType, vals []float64) ([]byte, error) {
	out := make([]byte, len(vals)*dt.Size())
	switch dt {
	case ndarray.Float64:
		for i, v := range vals {
			binary.LittleEndian.PutUint64(out[i*8:], math.Float64bits(v))
		}
	case ndarray.Float32:
		for i, v := range vals {
			binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(float32(v)))
		}
	case ndarray.Float16:
		for i, v := range vals {
			binary.LittleEndian.PutUint16(out[i*2:], float16.Fromfloat32(float32(v)).Bits())
		}
	case ndarray.Int32:
		for i, v := range vals {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(int32(v)))
		}
	case ndarray.Int16:
		for i, v := range vals {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
		}
	case ndarray.Int8:
		for i, v := range vals {
			out[i] = byte(int8(v))
		}
	case ndarray.Uint32:
		for i, v := range vals {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
		}
	case ndarray.Uint16:
		for i, v := range vals {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
		}
	case ndarray.Uint8:
		for i, v := range vals {
			out[i] = byte(v)
		}
	default:
		return nil, fmt.Errorf("unsupported dtype %v: %w", dt, ndarray.ErrInvalidParameter)
	}
	return out, nil
}

// decodeElements unpacks little-endian element bytes into logical
// float64 values.
func decodeElements(dt ndarray.DataType, raw []byte) ([]float64, error) {
	es := dt.Size()
	if es == 0 {
		return nil, fmt.Errorf("unsupported dtype %v: %w", dt, ndarray.ErrInvalidParameter)
	}
	if len(raw)%es != 0 {
		return nil, fmt.Errorf("%d data bytes do not divide into %d-byte elements: %w",
			len(raw), es, ErrMalformedHeader)
	}
	vals := make([]float64, len(raw)/es)
	switch dt {
	case ndarray.Float64:
		for i := range vals {
			vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}
	case ndarray.Float32:
		for i := range vals {
			vals[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	case ndarray.Float16:
		for i := range vals {
			vals[i] = float64(float16.Frombits(binary.LittleEndian.Uint16(raw[i*2:])).Float32())
		}
	case ndarray.Int32:
		for i := range vals {
			vals[i] = float64(int32(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	case ndarray.Int16:
		for i := range vals {
			vals[i] = float64(int16(binary.LittleEndian.Uint16(raw[i*2:])))
		}
	case ndarray.Int8:
		for i := range vals {
			vals[i] = float64(int8(raw[i]))
		}
	case ndarray.Uint32:
		for i := range vals {
			vals[i] = float64(binary.LittleEndian.Uint32(raw[i*4:]))
		}
	case ndarray.Uint16:
		for i := range vals {
			vals[i] = float64(binary.LittleEndian.Uint16(raw[i*2:]))
		}
	case ndarray.Uint8:
		for i := range vals {
			vals[i] = float64(raw[i])
		}
	}
	return vals, nil
}

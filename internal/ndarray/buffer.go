package ndarray

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// buffer is the reference-counted flat storage shared by an array and all
// of its views. The count makes aliasing lifetime explicit: it starts at 1
// for the owning array, every view retains it, and the storage is dropped
// once the last referent releases it.
type buffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // guards deallocation
}

// newBuffer allocates zeroed storage with refCount = 1.
func newBuffer(size int) *buffer {
	b := &buffer{
		data: make([]byte, size),
	}
	b.refCount.Store(1)
	return b
}

// addRef increments the reference count (view creation).
func (b *buffer) addRef() {
	b.refCount.Add(1)
}

// release decrements the reference count and drops the storage at zero.
func (b *buffer) release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique reports whether exactly one array references this buffer.
func (b *buffer) isUnique() bool {
	return b.refCount.Load() == 1
}

// Typed windows over the raw storage. Each reinterprets the full byte
// buffer in physical order; the caller is responsible for matching the
// element width to the owning array's dtype.

func (b *buffer) f64() []float64 {
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data)/8)
}

func (b *buffer) f32() []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data)/4)
}

func (b *buffer) i32() []int32 {
	return unsafe.Slice((*int32)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data)/4)
}

func (b *buffer) i16() []int16 {
	return unsafe.Slice((*int16)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data)/2)
}

func (b *buffer) i8() []int8 {
	return unsafe.Slice((*int8)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data))
}

func (b *buffer) u32() []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data)/4)
}

func (b *buffer) u16() []uint16 {
	return unsafe.Slice((*uint16)(unsafe.Pointer(unsafe.SliceData(b.data))), len(b.data)/2)
}

func (b *buffer) u8() []uint8 {
	return b.data
}

package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// ByteArray wraps a native byte array. Its main use is as the destination
// buffer for image encoding, see Image.WriteToData.
type ByteArray struct {
	core C.BLArrayCore
}

// NewByteArray creates an empty byte array.
func NewByteArray() *ByteArray {
	a := &ByteArray{}
	C.blArrayInit(&a.core, C.BL_IMPL_TYPE_ARRAY_U8)
	return a
}

// Len returns the number of bytes in the array.
func (a *ByteArray) Len() int {
	return int(C.blArrayGetSize(&a.core))
}

// Data returns the array contents. The returned slice aliases native memory
// and is valid only until the array is modified or destroyed.
func (a *ByteArray) Data() []byte {
	n := a.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(C.blArrayGetData(&a.core)), n)
}

// Bytes returns a copy of the array contents owned by Go.
func (a *ByteArray) Bytes() []byte {
	data := a.Data()
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// Append appends bytes to the array.
func (a *ByteArray) Append(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return resultToError(C.blArrayAppendView(&a.core, unsafe.Pointer(&p[0]), C.size_t(len(p))))
}

// Clear removes all items without releasing the allocation.
func (a *ByteArray) Clear() {
	C.blArrayClear(&a.core)
}

// Reserve reserves capacity for at least n bytes. It panics if the native
// allocation fails; use TryReserve to handle allocation failure.
func (a *ByteArray) Reserve(n int) {
	mustOK(C.blArrayReserve(&a.core, C.size_t(n)))
}

// TryReserve reserves capacity for at least n bytes.
func (a *ByteArray) TryReserve(n int) error {
	return resultToError(C.blArrayReserve(&a.core, C.size_t(n)))
}

// Equals reports whether two arrays hold identical contents.
func (a *ByteArray) Equals(other *ByteArray) bool {
	return bool(C.blArrayEquals(&a.core, &other.core))
}

// Clone returns a weak clone sharing the underlying storage.
func (a *ByteArray) Clone() *ByteArray {
	clone := &ByteArray{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&a.core))
	return clone
}

// CloneDeep returns an independent copy of the array.
func (a *ByteArray) CloneDeep() *ByteArray {
	clone := NewByteArray()
	mustOK(C.blArrayAssignDeep(&clone.core, &a.core))
	return clone
}

// Destroy releases the array handle. Destroy is idempotent.
func (a *ByteArray) Destroy() {
	C.blArrayReset(&a.core)
}

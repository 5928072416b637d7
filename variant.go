package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// Every handle type in this package wraps a BL*Core struct whose only field
// is a pointer to a reference-counted impl owned by the native library.
// All cores share the BLVariantCore layout, which lets a single set of
// helpers implement weak cloning and refcount inspection for all of them.

// initWeak initializes dst as a weak (reference-counted) copy of src.
// Both arguments must point at BL*Core structs.
func initWeak(dst, src unsafe.Pointer) {
	C.blVariantInitWeak((*C.BLVariantCore)(dst), (*C.BLVariantCore)(src))
}

// implOf returns the impl pointer of a BL*Core struct. Two handles are weak
// clones of each other exactly when their impl pointers are equal.
func implOf(core unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer((*C.BLVariantCore)(core).impl)
}

// refCountOf returns the native reference count of the resource behind a
// BL*Core struct. Used by tests to verify clone/release bookkeeping.
func refCountOf(core unsafe.Pointer) uintptr {
	impl := (*C.BLVariantImpl)((*C.BLVariantCore)(core).impl)
	return uintptr(impl.refCount)
}

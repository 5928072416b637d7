package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// FontManager manages a collection of font faces.
type FontManager struct {
	core C.BLFontManagerCore
}

// NewFontManager creates an empty font manager.
func NewFontManager() *FontManager {
	m := &FontManager{}
	C.blFontManagerInit(&m.core)
	return m
}

// Equals reports whether two managers share the same impl.
func (m *FontManager) Equals(other *FontManager) bool {
	return bool(C.blFontManagerEquals(&m.core, &other.core))
}

// Clone returns a weak clone of the manager handle.
func (m *FontManager) Clone() *FontManager {
	clone := &FontManager{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&m.core))
	return clone
}

// Destroy releases the manager handle. Destroy is idempotent.
func (m *FontManager) Destroy() {
	C.blFontManagerReset(&m.core)
}

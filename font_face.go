package blend2d

/*
#include <stdlib.h>
#include <blend2d.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// stringView mirrors the leading union of BLStringImpl.
type stringView struct {
	data *byte
	size uintptr
}

func blStringToGo(s *C.BLStringCore) string {
	v := (*stringView)(unsafe.Pointer(s.impl))
	if v.size == 0 {
		return ""
	}
	return string(unsafe.Slice(v.data, v.size))
}

// FontFace is a single face of a font file, shared by every Font created
// from it.
type FontFace struct {
	core C.BLFontFaceCore
}

// NewFontFaceFromFile reads a font face from the file at the given path.
func NewFontFaceFromFile(path string, readFlags DataAccessFlags) (*FontFace, error) {
	face := &FontFace{}
	C.blFontFaceInit(&face.core)
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	if err := resultToError(C.blFontFaceCreateFromFile(&face.core, cpath, C.uint32_t(readFlags))); err != nil {
		face.Destroy()
		return nil, fmt.Errorf("reading font face %q: %w", path, err)
	}
	return face, nil
}

// NewFontFaceFromData creates a font face from font data at faceIndex.
func NewFontFaceFromData(data *FontData, faceIndex uint32) (*FontFace, error) {
	face := &FontFace{}
	C.blFontFaceInit(&face.core)
	if err := resultToError(C.blFontFaceCreateFromData(&face.core, &data.core, C.uint32_t(faceIndex))); err != nil {
		face.Destroy()
		return nil, err
	}
	return face, nil
}

func (f *FontFace) impl() *C.BLFontFaceImpl {
	return (*C.BLFontFaceImpl)(unsafe.Pointer(f.core.impl))
}

// CreateFont creates a font of the given size from the face.
func (f *FontFace) CreateFont(size float32) (*Font, error) {
	return NewFontFromFace(f, size)
}

// FaceInfo returns a summary of the face.
func (f *FontFace) FaceInfo() FontFaceInfo {
	return *(*FontFaceInfo)(unsafe.Pointer(&f.impl().faceInfo))
}

// FaceType returns the face type.
func (f *FontFace) FaceType() FontFaceType { return f.FaceInfo().FaceType }

// OutlineType returns the outline format.
func (f *FontFace) OutlineType() FontOutlineType { return f.FaceInfo().OutlineType }

// FaceFlags returns the face feature flags.
func (f *FontFace) FaceFlags() FontFaceFlags { return f.FaceInfo().FaceFlags }

// DiagFlags returns the face diagnostic flags.
func (f *FontFace) DiagFlags() FontFaceDiagFlags { return f.FaceInfo().DiagFlags }

// GlyphCount returns the number of glyphs the face provides.
func (f *FontFace) GlyphCount() uint32 { return f.FaceInfo().GlyphCount }

// FaceIndex returns the face's index inside its collection, zero for a
// standalone font.
func (f *FontFace) FaceIndex() uint32 { return f.FaceInfo().FaceIndex }

// HasKerning reports whether the face has a legacy horizontal kerning table.
func (f *FontFace) HasKerning() bool {
	return f.FaceFlags()&FontFaceFlagHorizontalKerning != 0
}

// HasOpenTypeFeatures reports whether the face has GDEF, GPOS, or GSUB
// tables.
func (f *FontFace) HasOpenTypeFeatures() bool {
	return f.FaceFlags()&FontFaceFlagOpenTypeFeatures != 0
}

// HasCharToGlyphMapping reports whether the face can map characters to
// glyphs.
func (f *FontFace) HasCharToGlyphMapping() bool {
	return f.FaceFlags()&FontFaceFlagCharToGlyphMapping != 0
}

// UniqueID returns an identifier unique to this face within the process.
func (f *FontFace) UniqueID() uint64 {
	return uint64(f.impl().faceUniqueId)
}

// Weight returns the face's weight class.
func (f *FontFace) Weight() FontWeight {
	return FontWeight(f.impl().weight)
}

// Stretch returns the face's width class.
func (f *FontFace) Stretch() FontStretch {
	return FontStretch(f.impl().stretch)
}

// Style returns the face's slant class.
func (f *FontFace) Style() FontStyle {
	return FontStyle(f.impl().style)
}

// Data returns a weak clone of the font data behind the face.
func (f *FontFace) Data() *FontData {
	data := &FontData{}
	initWeak(unsafe.Pointer(&data.core), unsafe.Pointer(&f.impl().data))
	return data
}

// DesignMetrics returns the face's metrics in design units.
func (f *FontFace) DesignMetrics() FontDesignMetrics {
	return *(*FontDesignMetrics)(unsafe.Pointer(&f.impl().designMetrics))
}

// UnitsPerEm returns the face's units per em.
func (f *FontFace) UnitsPerEm() int32 {
	return f.DesignMetrics().UnitsPerEm
}

// UnicodeCoverage returns the face's unicode coverage bitset.
func (f *FontFace) UnicodeCoverage() FontUnicodeCoverage {
	return *(*FontUnicodeCoverage)(unsafe.Pointer(&f.impl().unicodeCoverage))
}

// FullName returns the face's full name.
func (f *FontFace) FullName() string {
	return blStringToGo(&f.impl().fullName)
}

// FamilyName returns the face's family name.
func (f *FontFace) FamilyName() string {
	return blStringToGo(&f.impl().familyName)
}

// SubfamilyName returns the face's subfamily name.
func (f *FontFace) SubfamilyName() string {
	return blStringToGo(&f.impl().subfamilyName)
}

// PostScriptName returns the face's PostScript name.
func (f *FontFace) PostScriptName() string {
	return blStringToGo(&f.impl().postScriptName)
}

// Equals reports whether two faces share the same impl.
func (f *FontFace) Equals(other *FontFace) bool {
	return bool(C.blFontFaceEquals(&f.core, &other.core))
}

// Clone returns a weak clone of the face handle.
func (f *FontFace) Clone() *FontFace {
	clone := &FontFace{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&f.core))
	return clone
}

// Destroy releases the face handle. Destroy is idempotent.
func (f *FontFace) Destroy() {
	C.blFontFaceReset(&f.core)
}

package blend2d

/*
#include <blend2d.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Font is a font face scaled to a size, ready for shaping and rendering
// text.
type Font struct {
	core C.BLFontCore
}

// NewFontFromFace creates a font of the given size from face.
func NewFontFromFace(face *FontFace, size float32) (*Font, error) {
	font := &Font{}
	C.blFontInit(&font.core)
	if err := resultToError(C.blFontCreateFromFace(&font.core, &face.core, C.float(size))); err != nil {
		font.Destroy()
		return nil, fmt.Errorf("creating font of size %g: %w", size, err)
	}
	return font, nil
}

func (f *Font) impl() *C.BLFontImpl {
	return (*C.BLFontImpl)(unsafe.Pointer(f.core.impl))
}

// Face returns a weak clone of the face the font was created from.
func (f *Font) Face() *FontFace {
	face := &FontFace{}
	initWeak(unsafe.Pointer(&face.core), unsafe.Pointer(&f.impl().face))
	return face
}

// Size returns the font size.
func (f *Font) Size() float32 {
	return float32(f.impl().metrics.size)
}

// UnitsPerEm returns the units per em of the font's face.
func (f *Font) UnitsPerEm() int32 {
	face := f.Face()
	defer face.Destroy()
	return face.UnitsPerEm()
}

// Weight returns the font's weight class.
func (f *Font) Weight() FontWeight {
	return FontWeight(f.impl().weight)
}

// Stretch returns the font's width class.
func (f *Font) Stretch() FontStretch {
	return FontStretch(f.impl().stretch)
}

// Style returns the font's slant class.
func (f *Font) Style() FontStyle {
	return FontStyle(f.impl().style)
}

// Matrix returns the matrix scaling design units into user units.
func (f *Font) Matrix() FontMatrix {
	return *(*FontMatrix)(unsafe.Pointer(&f.impl().matrix))
}

// Metrics returns the face metrics scaled to the font's size.
func (f *Font) Metrics() FontMetrics {
	return *(*FontMetrics)(unsafe.Pointer(&f.impl().metrics))
}

// DesignMetrics returns the metrics of the font's face in design units.
func (f *Font) DesignMetrics() FontDesignMetrics {
	face := f.Face()
	defer face.Destroy()
	return face.DesignMetrics()
}

// Shape maps the buffer's text to glyphs and positions them, applying all
// features the font provides.
func (f *Font) Shape(buf *GlyphBuffer) error {
	return resultToError(C.blFontShape(&f.core, &buf.core))
}

// MapTextToGlyphs replaces the buffer's characters with glyph ids and
// reports how the mapping went.
func (f *Font) MapTextToGlyphs(buf *GlyphBuffer) (GlyphMappingState, error) {
	var state GlyphMappingState
	err := resultToError(C.blFontMapTextToGlyphs(
		&f.core,
		&buf.core,
		(*C.BLGlyphMappingState)(unsafe.Pointer(&state)),
	))
	return state, err
}

// ApplyKerning adjusts glyph positions using the legacy kerning table.
func (f *Font) ApplyKerning(buf *GlyphBuffer) error {
	return resultToError(C.blFontApplyKerning(&f.core, &buf.core))
}

// ApplyGSub applies glyph substitution using the lookups selected in the
// GSUB table.
func (f *Font) ApplyGSub(buf *GlyphBuffer, index, lookups uint) error {
	return resultToError(C.blFontApplyGSub(&f.core, &buf.core, C.size_t(index), C.size_t(lookups)))
}

// ApplyGPos applies glyph positioning using the lookups selected in the
// GPOS table.
func (f *Font) ApplyGPos(buf *GlyphBuffer, index, lookups uint) error {
	return resultToError(C.blFontApplyGPos(&f.core, &buf.core, C.size_t(index), C.size_t(lookups)))
}

// TextMetrics measures the shaped buffer.
func (f *Font) TextMetrics(buf *GlyphBuffer) (TextMetrics, error) {
	var metrics TextMetrics
	err := resultToError(C.blFontGetTextMetrics(
		&f.core,
		&buf.core,
		(*C.BLTextMetrics)(unsafe.Pointer(&metrics)),
	))
	return metrics, err
}

// Equals reports whether two fonts share the same impl.
func (f *Font) Equals(other *Font) bool {
	return bool(C.blFontEquals(&f.core, &other.core))
}

// Clone returns a weak clone of the font handle.
func (f *Font) Clone() *Font {
	clone := &Font{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&f.core))
	return clone
}

// Destroy releases the font handle. Destroy is idempotent.
func (f *Font) Destroy() {
	C.blFontReset(&f.core)
}

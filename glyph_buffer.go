package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// GlyphID is a single glyph identifier.
type GlyphID = uint16

// GlyphRun points into a glyph buffer's shaped content. It stays valid only
// while the owning buffer is alive and unmodified.
type GlyphRun struct {
	ptr *C.BLGlyphRun
}

// Len returns the number of glyphs or characters in the run.
func (r *GlyphRun) Len() int {
	return int(r.ptr.size)
}

// Flags returns the run's flags.
func (r *GlyphRun) Flags() GlyphRunFlags {
	return GlyphRunFlags(r.ptr.flags)
}

// GlyphBuffer holds either text or glyphs and provides the memory management
// used by text shaping, character to glyph mapping, glyph substitution, and
// glyph positioning.
type GlyphBuffer struct {
	core C.BLGlyphBufferCore
}

// NewGlyphBuffer creates an empty glyph buffer.
func NewGlyphBuffer() *GlyphBuffer {
	b := &GlyphBuffer{}
	C.blGlyphBufferInit(&b.core)
	return b
}

// NewGlyphBufferFromText creates a glyph buffer initialized with text.
func NewGlyphBufferFromText(text string) *GlyphBuffer {
	b := NewGlyphBuffer()
	b.SetText(text)
	return b
}

// GlyphRun returns the buffer's current run. The run aliases the buffer and
// is valid only until the buffer is modified or destroyed.
func (b *GlyphBuffer) GlyphRun() *GlyphRun {
	return &GlyphRun{ptr: (*C.BLGlyphRun)(unsafe.Pointer(b.core.impl))}
}

// Len returns the number of glyphs or characters in the buffer.
func (b *GlyphBuffer) Len() int {
	return b.GlyphRun().Len()
}

// Flags returns the buffer's run flags.
func (b *GlyphBuffer) Flags() GlyphRunFlags {
	return b.GlyphRun().Flags()
}

// HasText reports whether the buffer still holds unicode text.
func (b *GlyphBuffer) HasText() bool {
	return b.Flags()&GlyphRunUCS4Content != 0
}

// HasGlyphs reports whether the buffer holds glyph ids.
func (b *GlyphBuffer) HasGlyphs() bool {
	return !b.HasText()
}

// HasInvalidChars reports whether the text had encoding errors.
func (b *GlyphBuffer) HasInvalidChars() bool {
	return b.Flags()&GlyphRunInvalidText != 0
}

// HasUndefinedChars reports whether some characters had no glyph in the
// font.
func (b *GlyphBuffer) HasUndefinedChars() bool {
	return b.Flags()&GlyphRunUndefinedGlyphs != 0
}

// HasInvalidFontData reports whether processing stopped because of invalid
// data in the font.
func (b *GlyphBuffer) HasInvalidFontData() bool {
	return b.Flags()&GlyphRunInvalidFontData != 0
}

// SetText replaces the buffer's content with text. It panics if the native
// allocation fails.
func (b *GlyphBuffer) SetText(text string) {
	if len(text) == 0 {
		b.Clear()
		return
	}
	data := []byte(text)
	mustOK(C.blGlyphBufferSetText(
		&b.core,
		unsafe.Pointer(&data[0]),
		C.size_t(len(data)),
		C.BL_TEXT_ENCODING_UTF8,
	))
}

// Clear removes the buffer's content without releasing internal buffers.
func (b *GlyphBuffer) Clear() {
	C.blGlyphBufferClear(&b.core)
}

// Destroy releases the glyph buffer. Destroy is idempotent.
func (b *GlyphBuffer) Destroy() {
	C.blGlyphBufferReset(&b.core)
}

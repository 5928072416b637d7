package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// Pattern fills or strokes shapes with a repeated image. The pattern holds a
// weak reference to its image; destroying the pattern does not destroy the
// image.
type Pattern struct {
	core C.BLPatternCore
}

// NewPattern creates a pattern from image. A nil area means the whole image;
// a nil matrix means identity.
func NewPattern(image *Image, area *RectI, extendMode ExtendMode, m *Matrix2D) *Pattern {
	p := &Pattern{}
	mustOK(C.blPatternInitAs(
		&p.core,
		&image.core,
		(*C.BLRectI)(unsafe.Pointer(area)),
		C.uint32_t(extendMode),
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
	))
	return p
}

func (p *Pattern) impl() *C.BLPatternImpl {
	return (*C.BLPatternImpl)(unsafe.Pointer(p.core.impl))
}

// Image returns a weak clone of the pattern's image.
func (p *Pattern) Image() *Image {
	img := &Image{}
	initWeak(unsafe.Pointer(&img.core), unsafe.Pointer(&p.impl().image))
	return img
}

// SetImage replaces the pattern's image. A nil area means the whole image.
func (p *Pattern) SetImage(image *Image, area *RectI) error {
	return resultToError(C.blPatternSetImage(&p.core, &image.core, (*C.BLRectI)(unsafe.Pointer(area))))
}

// Area returns the image area the pattern uses.
func (p *Pattern) Area() RectI {
	return *(*RectI)(unsafe.Pointer(&p.impl().area))
}

// SetArea restricts the pattern to an image area.
func (p *Pattern) SetArea(area RectI) error {
	return resultToError(C.blPatternSetArea(&p.core, (*C.BLRectI)(unsafe.Pointer(&area))))
}

// ResetArea restores the pattern to use the whole image.
func (p *Pattern) ResetArea() error {
	return p.SetArea(RectI{})
}

// ExtendMode returns the pattern's extend mode.
func (p *Pattern) ExtendMode() ExtendMode {
	return ExtendMode(p.impl().extendMode)
}

// SetExtendMode sets the pattern's extend mode.
func (p *Pattern) SetExtendMode(mode ExtendMode) error {
	return resultToError(C.blPatternSetExtendMode(&p.core, C.uint32_t(mode)))
}

// HasMatrix reports whether the pattern's matrix is not identity.
func (p *Pattern) HasMatrix() bool {
	return p.impl().matrixType != C.BL_MATRIX2D_TYPE_IDENTITY
}

// Matrix returns the pattern's transformation matrix.
func (p *Pattern) Matrix() Matrix2D {
	return *(*Matrix2D)(unsafe.Pointer(&p.impl().matrix))
}

func (p *Pattern) applyMatrixOp(op matrixOp, data unsafe.Pointer) {
	mustOK(C.blPatternApplyMatrixOp(&p.core, C.uint32_t(op), data))
}

// SetMatrix replaces the pattern's transformation matrix.
func (p *Pattern) SetMatrix(m *Matrix2D) {
	p.applyMatrixOp(matrixOpAssign, unsafe.Pointer(m))
}

// ResetMatrix resets the pattern's transformation matrix to identity.
func (p *Pattern) ResetMatrix() {
	p.applyMatrixOp(matrixOpReset, nil)
}

// Translate translates the pattern by (x, y).
func (p *Pattern) Translate(x, y float64) {
	d := [2]float64{x, y}
	p.applyMatrixOp(matrixOpTranslate, unsafe.Pointer(&d))
}

// Scale scales the pattern by (x, y).
func (p *Pattern) Scale(x, y float64) {
	d := [2]float64{x, y}
	p.applyMatrixOp(matrixOpScale, unsafe.Pointer(&d))
}

// Rotate rotates the pattern by angle (radians).
func (p *Pattern) Rotate(angle float64) {
	p.applyMatrixOp(matrixOpRotate, unsafe.Pointer(&angle))
}

// RotateAround rotates the pattern by angle (radians) around (x, y).
func (p *Pattern) RotateAround(angle, x, y float64) {
	d := [3]float64{angle, x, y}
	p.applyMatrixOp(matrixOpRotatePt, unsafe.Pointer(&d))
}

// Skew skews the pattern by (x, y).
func (p *Pattern) Skew(x, y float64) {
	d := [2]float64{x, y}
	p.applyMatrixOp(matrixOpSkew, unsafe.Pointer(&d))
}

// Transform multiplies the pattern's matrix by m.
func (p *Pattern) Transform(m *Matrix2D) {
	p.applyMatrixOp(matrixOpTransform, unsafe.Pointer(m))
}

// PostTranslate post-translates the pattern by (x, y).
func (p *Pattern) PostTranslate(x, y float64) {
	d := [2]float64{x, y}
	p.applyMatrixOp(matrixOpPostTranslate, unsafe.Pointer(&d))
}

// PostScale post-scales the pattern by (x, y).
func (p *Pattern) PostScale(x, y float64) {
	d := [2]float64{x, y}
	p.applyMatrixOp(matrixOpPostScale, unsafe.Pointer(&d))
}

// PostSkew post-skews the pattern by (x, y).
func (p *Pattern) PostSkew(x, y float64) {
	d := [2]float64{x, y}
	p.applyMatrixOp(matrixOpPostSkew, unsafe.Pointer(&d))
}

// PostRotate post-rotates the pattern by angle (radians).
func (p *Pattern) PostRotate(angle float64) {
	p.applyMatrixOp(matrixOpPostRotate, unsafe.Pointer(&angle))
}

// PostRotateAround post-rotates the pattern by angle (radians) around
// (x, y).
func (p *Pattern) PostRotateAround(angle, x, y float64) {
	d := [3]float64{angle, x, y}
	p.applyMatrixOp(matrixOpPostRotatePt, unsafe.Pointer(&d))
}

// PostTransform post-multiplies the pattern's matrix by m.
func (p *Pattern) PostTransform(m *Matrix2D) {
	p.applyMatrixOp(matrixOpPostTransform, unsafe.Pointer(m))
}

// Equals reports whether two patterns are equal.
func (p *Pattern) Equals(other *Pattern) bool {
	return bool(C.blPatternEquals(&p.core, &other.core))
}

// Clone returns a weak clone sharing the underlying pattern data.
func (p *Pattern) Clone() *Pattern {
	clone := &Pattern{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&p.core))
	return clone
}

// CloneDeep returns an independent copy of the pattern. The image itself is
// still shared by weak reference.
func (p *Pattern) CloneDeep() *Pattern {
	clone := &Pattern{}
	C.blPatternInit(&clone.core)
	mustOK(C.blPatternAssignDeep(&clone.core, &p.core))
	return clone
}

// Destroy releases the pattern handle. Destroy is idempotent.
func (p *Pattern) Destroy() {
	C.blPatternReset(&p.core)
}

package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// Matrix2D is a row-major 2D affine transformation matrix:
//
//	[m00 m01]
//	[m10 m11]
//	[m20 m21]
//
// Its layout matches the native BLMatrix2D, so a pointer to it can be handed
// to the C API directly.
type Matrix2D [6]float64

// matrix op codes mirroring BLMatrix2DOp.
type matrixOp uint32

const (
	matrixOpReset         = matrixOp(C.BL_MATRIX2D_OP_RESET)
	matrixOpAssign        = matrixOp(C.BL_MATRIX2D_OP_ASSIGN)
	matrixOpTranslate     = matrixOp(C.BL_MATRIX2D_OP_TRANSLATE)
	matrixOpScale         = matrixOp(C.BL_MATRIX2D_OP_SCALE)
	matrixOpSkew          = matrixOp(C.BL_MATRIX2D_OP_SKEW)
	matrixOpRotate        = matrixOp(C.BL_MATRIX2D_OP_ROTATE)
	matrixOpRotatePt      = matrixOp(C.BL_MATRIX2D_OP_ROTATE_PT)
	matrixOpTransform     = matrixOp(C.BL_MATRIX2D_OP_TRANSFORM)
	matrixOpPostTranslate = matrixOp(C.BL_MATRIX2D_OP_POST_TRANSLATE)
	matrixOpPostScale     = matrixOp(C.BL_MATRIX2D_OP_POST_SCALE)
	matrixOpPostSkew      = matrixOp(C.BL_MATRIX2D_OP_POST_SKEW)
	matrixOpPostRotate    = matrixOp(C.BL_MATRIX2D_OP_POST_ROTATE)
	matrixOpPostRotatePt  = matrixOp(C.BL_MATRIX2D_OP_POST_ROTATE_PT)
	matrixOpPostTransform = matrixOp(C.BL_MATRIX2D_OP_POST_TRANSFORM)
)

// IdentityMatrix returns the identity matrix.
func IdentityMatrix() Matrix2D {
	return Matrix2D{1, 0, 0, 1, 0, 0}
}

// TranslationMatrix returns a translation matrix.
func TranslationMatrix(x, y float64) Matrix2D {
	return Matrix2D{1, 0, 0, 1, x, y}
}

// ScalingMatrix returns a scaling matrix.
func ScalingMatrix(x, y float64) Matrix2D {
	return Matrix2D{x, 0, 0, y, 0, 0}
}

// RotationMatrix returns a matrix rotating by angle (radians) around (x, y).
func RotationMatrix(angle, x, y float64) Matrix2D {
	var m Matrix2D
	C.blMatrix2DSetRotation((*C.BLMatrix2D)(unsafe.Pointer(&m)), C.double(angle), C.double(x), C.double(y))
	return m
}

// SkewingMatrix returns a skewing matrix.
func SkewingMatrix(x, y float64) Matrix2D {
	var m Matrix2D
	C.blMatrix2DSetSkewing((*C.BLMatrix2D)(unsafe.Pointer(&m)), C.double(x), C.double(y))
	return m
}

// SinCosMatrix returns a rotation matrix built from precomputed sin/cos
// values, translated by (tx, ty).
func SinCosMatrix(sin, cos, tx, ty float64) Matrix2D {
	return Matrix2D{cos, sin, -sin, cos, tx, ty}
}

func (m *Matrix2D) apply(op matrixOp, data *float64) {
	mustOK(C.blMatrix2DApplyOp(
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
		C.uint32_t(op),
		unsafe.Pointer(data),
	))
}

// Reset resets the matrix to identity.
func (m *Matrix2D) Reset() {
	*m = IdentityMatrix()
}

// Translate translates the matrix by (x, y).
func (m *Matrix2D) Translate(x, y float64) {
	d := [2]float64{x, y}
	m.apply(matrixOpTranslate, &d[0])
}

// Scale scales the matrix by (x, y).
func (m *Matrix2D) Scale(x, y float64) {
	d := [2]float64{x, y}
	m.apply(matrixOpScale, &d[0])
}

// Skew skews the matrix by (x, y).
func (m *Matrix2D) Skew(x, y float64) {
	d := [2]float64{x, y}
	m.apply(matrixOpSkew, &d[0])
}

// Rotate rotates the matrix by angle (radians).
func (m *Matrix2D) Rotate(angle float64) {
	m.apply(matrixOpRotate, &angle)
}

// RotateAround rotates the matrix by angle (radians) around (x, y).
func (m *Matrix2D) RotateAround(angle, x, y float64) {
	d := [3]float64{angle, x, y}
	m.apply(matrixOpRotatePt, &d[0])
}

// Transform multiplies the matrix by other.
func (m *Matrix2D) Transform(other *Matrix2D) {
	m.apply(matrixOpTransform, &other[0])
}

// PostTranslate post-translates the matrix by (x, y).
func (m *Matrix2D) PostTranslate(x, y float64) {
	d := [2]float64{x, y}
	m.apply(matrixOpPostTranslate, &d[0])
}

// PostScale post-scales the matrix by (x, y).
func (m *Matrix2D) PostScale(x, y float64) {
	d := [2]float64{x, y}
	m.apply(matrixOpPostScale, &d[0])
}

// PostSkew post-skews the matrix by (x, y).
func (m *Matrix2D) PostSkew(x, y float64) {
	d := [2]float64{x, y}
	m.apply(matrixOpPostSkew, &d[0])
}

// PostRotate post-rotates the matrix by angle (radians).
func (m *Matrix2D) PostRotate(angle float64) {
	m.apply(matrixOpPostRotate, &angle)
}

// PostRotateAround post-rotates the matrix by angle (radians) around (x, y).
func (m *Matrix2D) PostRotateAround(angle, x, y float64) {
	d := [3]float64{angle, x, y}
	m.apply(matrixOpPostRotatePt, &d[0])
}

// PostTransform post-multiplies the matrix by other.
func (m *Matrix2D) PostTransform(other *Matrix2D) {
	m.apply(matrixOpPostTransform, &other[0])
}

// Invert writes the inverse of src into dst. It returns an error if src is
// not invertible.
func (m *Matrix2D) Invert(src *Matrix2D) error {
	return resultToError(C.blMatrix2DInvert(
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
		(*C.BLMatrix2D)(unsafe.Pointer(src)),
	))
}

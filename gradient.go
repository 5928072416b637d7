package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// GradientKind discriminates the three gradient types.
type GradientKind uint32

const (
	// GradientLinear is a linear gradient between two points.
	GradientLinear = GradientKind(C.BL_GRADIENT_TYPE_LINEAR)
	// GradientRadial is a radial gradient between two circles.
	GradientRadial = GradientKind(C.BL_GRADIENT_TYPE_RADIAL)
	// GradientConical is a conical gradient swept around a center point.
	GradientConical = GradientKind(C.BL_GRADIENT_TYPE_CONICAL)
)

// GradientStop is an offset in [0, 1] with an associated 64-bit RGBA color.
// Its layout matches the native BLGradientStop.
type GradientStop struct {
	Offset float64
	RGBA   uint64
}

// Stop32 returns a gradient stop built from a 32-bit 0xAARRGGBB color.
func Stop32(offset float64, rgba32 uint32) GradientStop {
	a := uint64(rgba32>>24) & 0xFF
	r := uint64(rgba32>>16) & 0xFF
	g := uint64(rgba32>>8) & 0xFF
	b := uint64(rgba32) & 0xFF
	return GradientStop{
		Offset: offset,
		RGBA:   a*0x0101<<48 | r*0x0101<<32 | g*0x0101<<16 | b*0x0101,
	}
}

// LinearGradientValues positions a linear gradient between (X0, Y0) and
// (X1, Y1).
type LinearGradientValues struct {
	X0, Y0, X1, Y1 float64
}

// RadialGradientValues positions a radial gradient with center (X0, Y0),
// focal point (X1, Y1), and radius R0.
type RadialGradientValues struct {
	X0, Y0, X1, Y1, R0 float64
}

// ConicalGradientValues positions a conical gradient at (X0, Y0) starting at
// Angle radians.
type ConicalGradientValues struct {
	X0, Y0, Angle float64
}

// Gradient is a linear, radial, or conical color gradient backed by a
// native, reference-counted stop buffer.
type Gradient struct {
	core C.BLGradientCore
}

func newGradient(kind GradientKind, values unsafe.Pointer, extendMode ExtendMode, stops []GradientStop, m *Matrix2D) *Gradient {
	g := &Gradient{}
	var stopPtr *C.BLGradientStop
	if len(stops) > 0 {
		stopPtr = (*C.BLGradientStop)(unsafe.Pointer(&stops[0]))
	}
	mustOK(C.blGradientInitAs(
		&g.core,
		C.uint32_t(kind),
		values,
		C.uint32_t(extendMode),
		stopPtr,
		C.size_t(len(stops)),
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
	))
	return g
}

// NewLinearGradient creates a linear gradient. A nil matrix means identity.
func NewLinearGradient(values LinearGradientValues, extendMode ExtendMode, stops []GradientStop, m *Matrix2D) *Gradient {
	return newGradient(GradientLinear, unsafe.Pointer(&values), extendMode, stops, m)
}

// NewRadialGradient creates a radial gradient. A nil matrix means identity.
func NewRadialGradient(values RadialGradientValues, extendMode ExtendMode, stops []GradientStop, m *Matrix2D) *Gradient {
	return newGradient(GradientRadial, unsafe.Pointer(&values), extendMode, stops, m)
}

// NewConicalGradient creates a conical gradient. A nil matrix means identity.
func NewConicalGradient(values ConicalGradientValues, extendMode ExtendMode, stops []GradientStop, m *Matrix2D) *Gradient {
	return newGradient(GradientConical, unsafe.Pointer(&values), extendMode, stops, m)
}

// Kind returns the gradient type.
func (g *Gradient) Kind() GradientKind {
	return GradientKind(C.blGradientGetType(&g.core))
}

// ExtendMode returns the gradient's extend mode.
func (g *Gradient) ExtendMode() ExtendMode {
	return ExtendMode(C.blGradientGetExtendMode(&g.core))
}

// SetExtendMode sets the gradient's extend mode.
func (g *Gradient) SetExtendMode(mode ExtendMode) {
	mustOK(C.blGradientSetExtendMode(&g.core, C.uint32_t(mode)))
}

func (g *Gradient) value(index C.size_t) float64 {
	return float64(C.blGradientGetValue(&g.core, index))
}

func (g *Gradient) setValue(index C.size_t, value float64) {
	mustOK(C.blGradientSetValue(&g.core, index, C.double(value)))
}

// X0 returns the gradient's x0 value.
func (g *Gradient) X0() float64 { return g.value(C.BL_GRADIENT_VALUE_COMMON_X0) }

// Y0 returns the gradient's y0 value.
func (g *Gradient) Y0() float64 { return g.value(C.BL_GRADIENT_VALUE_COMMON_Y0) }

// X1 returns the gradient's x1 value. Meaningful for linear and radial
// gradients.
func (g *Gradient) X1() float64 { return g.value(C.BL_GRADIENT_VALUE_COMMON_X1) }

// Y1 returns the gradient's y1 value. Meaningful for linear and radial
// gradients.
func (g *Gradient) Y1() float64 { return g.value(C.BL_GRADIENT_VALUE_COMMON_Y1) }

// R0 returns the gradient's radius. Meaningful for radial gradients.
func (g *Gradient) R0() float64 { return g.value(C.BL_GRADIENT_VALUE_RADIAL_R0) }

// Angle returns the gradient's angle. Meaningful for conical gradients.
func (g *Gradient) Angle() float64 { return g.value(C.BL_GRADIENT_VALUE_CONICAL_ANGLE) }

// SetX0 sets the gradient's x0 value.
func (g *Gradient) SetX0(v float64) { g.setValue(C.BL_GRADIENT_VALUE_COMMON_X0, v) }

// SetY0 sets the gradient's y0 value.
func (g *Gradient) SetY0(v float64) { g.setValue(C.BL_GRADIENT_VALUE_COMMON_Y0, v) }

// SetX1 sets the gradient's x1 value.
func (g *Gradient) SetX1(v float64) { g.setValue(C.BL_GRADIENT_VALUE_COMMON_X1, v) }

// SetY1 sets the gradient's y1 value.
func (g *Gradient) SetY1(v float64) { g.setValue(C.BL_GRADIENT_VALUE_COMMON_Y1, v) }

// SetR0 sets the gradient's radius.
func (g *Gradient) SetR0(v float64) { g.setValue(C.BL_GRADIENT_VALUE_RADIAL_R0, v) }

// SetAngle sets the gradient's angle.
func (g *Gradient) SetAngle(v float64) { g.setValue(C.BL_GRADIENT_VALUE_CONICAL_ANGLE, v) }

// LinearValues returns the gradient's placement as linear gradient values.
func (g *Gradient) LinearValues() LinearGradientValues {
	return LinearGradientValues{X0: g.X0(), Y0: g.Y0(), X1: g.X1(), Y1: g.Y1()}
}

// RadialValues returns the gradient's placement as radial gradient values.
func (g *Gradient) RadialValues() RadialGradientValues {
	return RadialGradientValues{X0: g.X0(), Y0: g.Y0(), X1: g.X1(), Y1: g.Y1(), R0: g.R0()}
}

// ConicalValues returns the gradient's placement as conical gradient values.
func (g *Gradient) ConicalValues() ConicalGradientValues {
	return ConicalGradientValues{X0: g.X0(), Y0: g.Y0(), Angle: g.Angle()}
}

// Len returns the number of stops.
func (g *Gradient) Len() int {
	return int(C.blGradientGetSize(&g.core))
}

// Capacity returns the currently allocated stop capacity.
func (g *Gradient) Capacity() int {
	return int(C.blGradientGetCapacity(&g.core))
}

// IsEmpty reports whether the gradient has no stops.
func (g *Gradient) IsEmpty() bool {
	return g.Len() == 0
}

// Stops returns the gradient stops. The slice aliases native memory and is
// valid only until the gradient is modified or destroyed.
func (g *Gradient) Stops() []GradientStop {
	n := g.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*GradientStop)(unsafe.Pointer(C.blGradientGetStops(&g.core))), n)
}

// Reserve reserves capacity for at least n stops. It panics if the native
// allocation fails; use TryReserve to handle allocation failure.
func (g *Gradient) Reserve(n int) {
	mustOK(C.blGradientReserve(&g.core, C.size_t(n)))
}

// TryReserve reserves capacity for at least n stops.
func (g *Gradient) TryReserve(n int) error {
	return resultToError(C.blGradientReserve(&g.core, C.size_t(n)))
}

// Shrink shrinks the allocated stop capacity down to the current size.
func (g *Gradient) Shrink() {
	mustOK(C.blGradientShrink(&g.core))
}

// AddStop appends a stop.
func (g *Gradient) AddStop(stop GradientStop) {
	g.AddStop64(stop.Offset, stop.RGBA)
}

// AddStop32 appends a stop with a 32-bit 0xAARRGGBB color.
func (g *Gradient) AddStop32(offset float64, rgba32 uint32) {
	mustOK(C.blGradientAddStopRgba32(&g.core, C.double(offset), C.uint32_t(rgba32)))
}

// AddStop64 appends a stop with a 64-bit color.
func (g *Gradient) AddStop64(offset float64, rgba64 uint64) {
	mustOK(C.blGradientAddStopRgba64(&g.core, C.double(offset), C.uint64_t(rgba64)))
}

// ReplaceStop32 replaces the stop at index with a 32-bit 0xAARRGGBB color at
// a new offset.
func (g *Gradient) ReplaceStop32(index int, offset float64, rgba32 uint32) {
	mustOK(C.blGradientReplaceStopRgba32(&g.core, C.size_t(index), C.double(offset), C.uint32_t(rgba32)))
}

// ReplaceStop64 replaces the stop at index with a 64-bit color at a new
// offset.
func (g *Gradient) ReplaceStop64(index int, offset float64, rgba64 uint64) {
	mustOK(C.blGradientReplaceStopRgba64(&g.core, C.size_t(index), C.double(offset), C.uint64_t(rgba64)))
}

// RemoveStop removes the stop at index.
func (g *Gradient) RemoveStop(index int) {
	mustOK(C.blGradientRemoveStop(&g.core, C.size_t(index)))
}

// RemoveStops removes the stops in index range [start, end).
func (g *Gradient) RemoveStops(start, end int) {
	mustOK(C.blGradientRemoveStops(&g.core, C.size_t(start), C.size_t(end)))
}

// RemoveStopByOffset removes the first stop matching offset. If all is true
// every stop matching offset is removed.
func (g *Gradient) RemoveStopByOffset(offset float64, all bool) {
	mustOK(C.blGradientRemoveStopByOffset(&g.core, C.double(offset), C.uint32_t(b2u(all))))
}

// RemoveStopsInRange removes all stops with offsets inside [offsetMin,
// offsetMax].
func (g *Gradient) RemoveStopsInRange(offsetMin, offsetMax float64) {
	mustOK(C.blGradientRemoveStopsFromTo(&g.core, C.double(offsetMin), C.double(offsetMax)))
}

// IndexOfStop returns the index of the stop with the given offset, or -1 if
// there is none.
func (g *Gradient) IndexOfStop(offset float64) int {
	idx := C.blGradientIndexOfStop(&g.core, C.double(offset))
	if idx == ^C.size_t(0) {
		return -1
	}
	return int(idx)
}

// ResetStops removes all stops.
func (g *Gradient) ResetStops() {
	mustOK(C.blGradientResetStops(&g.core))
}

// Matrix returns the gradient's transformation matrix.
func (g *Gradient) Matrix() Matrix2D {
	impl := (*C.BLGradientImpl)(unsafe.Pointer(g.core.impl))
	return *(*Matrix2D)(unsafe.Pointer(&impl.matrix))
}

func (g *Gradient) applyMatrixOp(op matrixOp, data unsafe.Pointer) {
	mustOK(C.blGradientApplyMatrixOp(&g.core, C.uint32_t(op), data))
}

// SetMatrix replaces the gradient's transformation matrix.
func (g *Gradient) SetMatrix(m *Matrix2D) {
	g.applyMatrixOp(matrixOpAssign, unsafe.Pointer(m))
}

// ResetMatrix resets the gradient's transformation matrix to identity.
func (g *Gradient) ResetMatrix() {
	g.applyMatrixOp(matrixOpReset, nil)
}

// Translate translates the gradient by (x, y).
func (g *Gradient) Translate(x, y float64) {
	d := [2]float64{x, y}
	g.applyMatrixOp(matrixOpTranslate, unsafe.Pointer(&d))
}

// Scale scales the gradient by (x, y).
func (g *Gradient) Scale(x, y float64) {
	d := [2]float64{x, y}
	g.applyMatrixOp(matrixOpScale, unsafe.Pointer(&d))
}

// Rotate rotates the gradient by angle (radians).
func (g *Gradient) Rotate(angle float64) {
	g.applyMatrixOp(matrixOpRotate, unsafe.Pointer(&angle))
}

// RotateAround rotates the gradient by angle (radians) around (x, y).
func (g *Gradient) RotateAround(angle, x, y float64) {
	d := [3]float64{angle, x, y}
	g.applyMatrixOp(matrixOpRotatePt, unsafe.Pointer(&d))
}

// Skew skews the gradient by (x, y).
func (g *Gradient) Skew(x, y float64) {
	d := [2]float64{x, y}
	g.applyMatrixOp(matrixOpSkew, unsafe.Pointer(&d))
}

// Transform multiplies the gradient's matrix by m.
func (g *Gradient) Transform(m *Matrix2D) {
	g.applyMatrixOp(matrixOpTransform, unsafe.Pointer(m))
}

// PostTranslate post-translates the gradient by (x, y).
func (g *Gradient) PostTranslate(x, y float64) {
	d := [2]float64{x, y}
	g.applyMatrixOp(matrixOpPostTranslate, unsafe.Pointer(&d))
}

// PostScale post-scales the gradient by (x, y).
func (g *Gradient) PostScale(x, y float64) {
	d := [2]float64{x, y}
	g.applyMatrixOp(matrixOpPostScale, unsafe.Pointer(&d))
}

// PostSkew post-skews the gradient by (x, y).
func (g *Gradient) PostSkew(x, y float64) {
	d := [2]float64{x, y}
	g.applyMatrixOp(matrixOpPostSkew, unsafe.Pointer(&d))
}

// PostRotate post-rotates the gradient by angle (radians).
func (g *Gradient) PostRotate(angle float64) {
	g.applyMatrixOp(matrixOpPostRotate, unsafe.Pointer(&angle))
}

// PostRotateAround post-rotates the gradient by angle (radians) around
// (x, y).
func (g *Gradient) PostRotateAround(angle, x, y float64) {
	d := [3]float64{angle, x, y}
	g.applyMatrixOp(matrixOpPostRotatePt, unsafe.Pointer(&d))
}

// PostTransform post-multiplies the gradient's matrix by m.
func (g *Gradient) PostTransform(m *Matrix2D) {
	g.applyMatrixOp(matrixOpPostTransform, unsafe.Pointer(m))
}

// Equals reports whether two gradients are equal.
func (g *Gradient) Equals(other *Gradient) bool {
	return bool(C.blGradientEquals(&g.core, &other.core))
}

// Clone returns a weak clone sharing the underlying stop buffer.
func (g *Gradient) Clone() *Gradient {
	clone := &Gradient{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&g.core))
	return clone
}

// CloneDeep returns an independent copy of the gradient.
func (g *Gradient) CloneDeep() *Gradient {
	clone := &Gradient{}
	C.blGradientInit(&clone.core)
	mustOK(C.blGradientAssignDeep(&clone.core, &g.core))
	return clone
}

// Destroy releases the gradient handle. Destroy is idempotent.
func (g *Gradient) Destroy() {
	C.blGradientReset(&g.core)
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// RegionType classifies a region's complexity.
type RegionType uint32

const (
	// RegionEmpty is a region with no boxes.
	RegionEmpty = RegionType(C.BL_REGION_TYPE_EMPTY)
	// RegionRect is a region formed by a single box.
	RegionRect = RegionType(C.BL_REGION_TYPE_RECT)
	// RegionComplex is a region formed by more than one box.
	RegionComplex = RegionType(C.BL_REGION_TYPE_COMPLEX)
)

// BooleanOp is a boolean operation applied when combining regions.
type BooleanOp uint32

const (
	BooleanOpCopy = BooleanOp(C.BL_BOOLEAN_OP_COPY)
	BooleanOpAnd  = BooleanOp(C.BL_BOOLEAN_OP_AND)
	BooleanOpOr   = BooleanOp(C.BL_BOOLEAN_OP_OR)
	BooleanOpXor  = BooleanOp(C.BL_BOOLEAN_OP_XOR)
	BooleanOpSub  = BooleanOp(C.BL_BOOLEAN_OP_SUB)
)

// regionView mirrors the leading union of BLRegionImpl.
type regionView struct {
	data *BoxI
	size uintptr
}

// Region is a set of non-overlapping, y-x sorted boxes describing a possibly
// disjoint area of the plane.
type Region struct {
	core C.BLRegionCore
}

// NewRegion creates an empty region.
func NewRegion() *Region {
	r := &Region{}
	C.blRegionInit(&r.core)
	return r
}

func (r *Region) view() *regionView {
	return (*regionView)(unsafe.Pointer(r.core.impl))
}

// Type returns the region's complexity class.
func (r *Region) Type() RegionType {
	return RegionType(C.blRegionGetType(&r.core))
}

// IsEmpty reports whether the region contains no boxes.
func (r *Region) IsEmpty() bool { return r.Type() == RegionEmpty }

// IsRect reports whether the region is a single box.
func (r *Region) IsRect() bool { return r.Type() == RegionRect }

// IsComplex reports whether the region holds more than one box.
func (r *Region) IsComplex() bool { return r.Type() == RegionComplex }

// Data returns the region's boxes. The slice aliases native memory and is
// valid only until the region is modified or destroyed.
func (r *Region) Data() []BoxI {
	v := r.view()
	if v.size == 0 {
		return nil
	}
	return unsafe.Slice(v.data, v.size)
}

// Len returns the number of boxes in the region.
func (r *Region) Len() int {
	return int(r.view().size)
}

// Capacity returns the currently allocated box capacity.
func (r *Region) Capacity() int {
	return int((*C.BLRegionImpl)(unsafe.Pointer(r.core.impl)).capacity)
}

// BoundingBox returns the bounding box of the region.
func (r *Region) BoundingBox() BoxI {
	impl := (*C.BLRegionImpl)(unsafe.Pointer(r.core.impl))
	return *(*BoxI)(unsafe.Pointer(&impl.boundingBox))
}

// Clear removes all boxes without releasing the allocation.
func (r *Region) Clear() error {
	return resultToError(C.blRegionClear(&r.core))
}

// Reserve reserves capacity for at least n boxes. It panics if the native
// allocation fails; use TryReserve to handle allocation failure.
func (r *Region) Reserve(n int) {
	mustOK(C.blRegionReserve(&r.core, C.size_t(n)))
}

// TryReserve reserves capacity for at least n boxes.
func (r *Region) TryReserve(n int) error {
	return resultToError(C.blRegionReserve(&r.core, C.size_t(n)))
}

// Shrink shrinks the allocated capacity down to the current size.
func (r *Region) Shrink() {
	mustOK(C.blRegionShrink(&r.core))
}

// Combine combines the region with other using op.
func (r *Region) Combine(other *Region, op BooleanOp) error {
	return resultToError(C.blRegionCombine(&r.core, &r.core, &other.core, C.uint32_t(op)))
}

// CombineBox combines the region with a box using op.
func (r *Region) CombineBox(b BoxI, op BooleanOp) error {
	return resultToError(C.blRegionCombineRB(&r.core, &r.core, (*C.BLBoxI)(unsafe.Pointer(&b)), C.uint32_t(op)))
}

// CombineBoxRegion combines a box with the region using op, storing the
// result in the region.
func (r *Region) CombineBoxRegion(b BoxI, op BooleanOp) error {
	return resultToError(C.blRegionCombineBR(&r.core, (*C.BLBoxI)(unsafe.Pointer(&b)), &r.core, C.uint32_t(op)))
}

// CombineBoxes stores the combination of two boxes in the region.
func (r *Region) CombineBoxes(a, b BoxI, op BooleanOp) error {
	return resultToError(C.blRegionCombineBB(
		&r.core,
		(*C.BLBoxI)(unsafe.Pointer(&a)),
		(*C.BLBoxI)(unsafe.Pointer(&b)),
		C.uint32_t(op),
	))
}

// Translate translates the region by pt. Coordinate overflow is handled by
// clipping, so the result can be smaller than the input.
func (r *Region) Translate(pt PointI) error {
	return resultToError(C.blRegionTranslate(&r.core, &r.core, (*C.BLPointI)(unsafe.Pointer(&pt))))
}

// TranslateAndClip translates the region by pt and clips it to clip.
func (r *Region) TranslateAndClip(pt PointI, clip BoxI) error {
	return resultToError(C.blRegionTranslateAndClip(
		&r.core,
		&r.core,
		(*C.BLPointI)(unsafe.Pointer(&pt)),
		(*C.BLBoxI)(unsafe.Pointer(&clip)),
	))
}

// IntersectAndClip intersects the region with other and clips the result to
// clip.
func (r *Region) IntersectAndClip(other *Region, clip BoxI) error {
	return resultToError(C.blRegionIntersectAndClip(
		&r.core,
		&r.core,
		&other.core,
		(*C.BLBoxI)(unsafe.Pointer(&clip)),
	))
}

// HitTest tests whether pt is inside the region.
func (r *Region) HitTest(pt PointI) HitTest {
	return HitTest(C.blRegionHitTest(&r.core, (*C.BLPointI)(unsafe.Pointer(&pt))))
}

// HitTestBox tests whether b is inside the region.
func (r *Region) HitTestBox(b BoxI) HitTest {
	return HitTest(C.blRegionHitTestBoxI(&r.core, (*C.BLBoxI)(unsafe.Pointer(&b))))
}

// Equals reports whether two regions describe the same area.
func (r *Region) Equals(other *Region) bool {
	return bool(C.blRegionEquals(&r.core, &other.core))
}

// Clone returns an independent copy of the region.
func (r *Region) Clone() *Region {
	clone := NewRegion()
	mustOK(C.blRegionAssignDeep(&clone.core, &r.core))
	return clone
}

// Destroy releases the region handle. Destroy is idempotent.
func (r *Region) Destroy() {
	C.blRegionReset(&r.core)
}

func (r *Region) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_REGION, unsafe.Pointer(&r.core)
}

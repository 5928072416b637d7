package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// The value types below mirror the native POD geometry structs field for
// field, so a pointer to the Go struct can be handed to the C API directly.

// PointI is a point with integer coordinates.
type PointI struct {
	X, Y int32
}

// Point is a point with double-precision coordinates.
type Point struct {
	X, Y float64
}

// SizeI is a size with integer dimensions.
type SizeI struct {
	W, H int32
}

// Size is a size with double-precision dimensions.
type Size struct {
	W, H float64
}

// BoxI is an axis-aligned box [X0, Y0) .. (X1, Y1] with integer coordinates.
type BoxI struct {
	X0, Y0, X1, Y1 int32
}

// Box is an axis-aligned box with double-precision coordinates.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// RectI is a rectangle with integer position and size.
type RectI struct {
	X, Y, W, H int32
}

// Rect is a rectangle with double-precision position and size.
type Rect struct {
	X, Y, W, H float64
}

// Line is a line segment.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// Triangle is a triangle defined by three points.
type Triangle struct {
	X0, Y0, X1, Y1, X2, Y2 float64
}

// RoundRect is a rectangle with rounded corners.
type RoundRect struct {
	X, Y, W, H, RX, RY float64
}

// Circle is a circle defined by center and radius.
type Circle struct {
	CX, CY, Radius float64
}

// Ellipse is an ellipse defined by center and radii.
type Ellipse struct {
	CX, CY, RX, RY float64
}

// Arc is an elliptic arc defined by center, radii, start angle, and sweep.
type Arc struct {
	CX, CY, RX, RY, Start, Sweep float64
}

// Chord is a chord (an arc closed by a straight line).
type Chord struct {
	CX, CY, RX, RY, Start, Sweep float64
}

// Pie is a pie slice (an arc closed through the center point).
type Pie struct {
	CX, CY, RX, RY, Start, Sweep float64
}

// FillRule determines how self-intersecting shapes are filled.
type FillRule uint32

const (
	// FillRuleNonZero fills using the non-zero winding rule.
	FillRuleNonZero = FillRule(C.BL_FILL_RULE_NON_ZERO)
	// FillRuleEvenOdd fills using the even-odd rule.
	FillRuleEvenOdd = FillRule(C.BL_FILL_RULE_EVEN_ODD)
)

// HitTest is the result of a point-in-shape query.
type HitTest uint32

const (
	// HitIn means the tested object is fully inside.
	HitIn = HitTest(C.BL_HIT_TEST_IN)
	// HitPart means the tested object is partially inside.
	HitPart = HitTest(C.BL_HIT_TEST_PART)
	// HitOut means the tested object is fully outside.
	HitOut = HitTest(C.BL_HIT_TEST_OUT)
)

// GeometryDirection is the direction of a geometry figure.
type GeometryDirection uint32

const (
	DirectionNone = GeometryDirection(C.BL_GEOMETRY_DIRECTION_NONE)
	DirectionCW   = GeometryDirection(C.BL_GEOMETRY_DIRECTION_CW)
	DirectionCCW  = GeometryDirection(C.BL_GEOMETRY_DIRECTION_CCW)
)

// Geometry is implemented by the shape types that can be filled, stroked,
// or appended to a Path in a single call.
type Geometry interface {
	// geometry returns the native geometry type tag and a pointer to the
	// shape data in native layout.
	geometry() (C.uint32_t, unsafe.Pointer)
}

func (b *BoxI) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_BOXI, unsafe.Pointer(b)
}

func (b *Box) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_BOXD, unsafe.Pointer(b)
}

func (r *RectI) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_RECTI, unsafe.Pointer(r)
}

func (r *Rect) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_RECTD, unsafe.Pointer(r)
}

func (l *Line) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_LINE, unsafe.Pointer(l)
}

func (t *Triangle) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_TRIANGLE, unsafe.Pointer(t)
}

func (r *RoundRect) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_ROUND_RECT, unsafe.Pointer(r)
}

func (c *Circle) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_CIRCLE, unsafe.Pointer(c)
}

func (e *Ellipse) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_ELLIPSE, unsafe.Pointer(e)
}

func (a *Arc) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_ARC, unsafe.Pointer(a)
}

func (c *Chord) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_CHORD, unsafe.Pointer(c)
}

func (p *Pie) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_PIE, unsafe.Pointer(p)
}

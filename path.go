package blend2d

/*
#include <blend2d.h>
*/
import "C"

import "unsafe"

// PathCommand classifies a single path vertex.
type PathCommand uint8

const (
	// PathCmdMove starts a new figure.
	PathCmdMove = PathCommand(C.BL_PATH_CMD_MOVE)
	// PathCmdOn is an on-path vertex (line-to or spline endpoint).
	PathCmdOn = PathCommand(C.BL_PATH_CMD_ON)
	// PathCmdQuad is a quadratic curve control point.
	PathCmdQuad = PathCommand(C.BL_PATH_CMD_QUAD)
	// PathCmdCubic is a cubic curve control point.
	PathCmdCubic = PathCommand(C.BL_PATH_CMD_CUBIC)
	// PathCmdClose closes the current figure.
	PathCmdClose = PathCommand(C.BL_PATH_CMD_CLOSE)
)

// PathFlags are informative flags cached on a path.
type PathFlags uint32

const (
	PathFlagEmpty    = PathFlags(C.BL_PATH_FLAG_EMPTY)
	PathFlagMultiple = PathFlags(C.BL_PATH_FLAG_MULTIPLE)
	PathFlagQuads    = PathFlags(C.BL_PATH_FLAG_QUADS)
	PathFlagCubics   = PathFlags(C.BL_PATH_FLAG_CUBICS)
	PathFlagInvalid  = PathFlags(C.BL_PATH_FLAG_INVALID)
	PathFlagDirty    = PathFlags(C.BL_PATH_FLAG_DIRTY)
)

// PathReverseMode selects how AddReversedPath treats figures.
type PathReverseMode uint32

const (
	// ReverseComplete reverses each figure including its closing directive.
	ReverseComplete = PathReverseMode(C.BL_PATH_REVERSE_MODE_COMPLETE)
	// ReverseSeparate reverses each figure but keeps the closing directive in
	// place.
	ReverseSeparate = PathReverseMode(C.BL_PATH_REVERSE_MODE_SEPARATE)
)

// StrokeJoin selects how stroked path segments are joined.
type StrokeJoin uint8

const (
	StrokeJoinMiterClip  = StrokeJoin(C.BL_STROKE_JOIN_MITER_CLIP)
	StrokeJoinMiterBevel = StrokeJoin(C.BL_STROKE_JOIN_MITER_BEVEL)
	StrokeJoinMiterRound = StrokeJoin(C.BL_STROKE_JOIN_MITER_ROUND)
	StrokeJoinBevel      = StrokeJoin(C.BL_STROKE_JOIN_BEVEL)
	StrokeJoinRound      = StrokeJoin(C.BL_STROKE_JOIN_ROUND)
)

// StrokeCapPosition selects which end of a stroked figure a cap applies to.
type StrokeCapPosition uint32

const (
	StrokeCapPositionStart = StrokeCapPosition(C.BL_STROKE_CAP_POSITION_START)
	StrokeCapPositionEnd   = StrokeCapPosition(C.BL_STROKE_CAP_POSITION_END)
)

// StrokeCap selects how open stroked figures are capped.
type StrokeCap uint8

const (
	StrokeCapButt        = StrokeCap(C.BL_STROKE_CAP_BUTT)
	StrokeCapSquare      = StrokeCap(C.BL_STROKE_CAP_SQUARE)
	StrokeCapRound       = StrokeCap(C.BL_STROKE_CAP_ROUND)
	StrokeCapRoundRev    = StrokeCap(C.BL_STROKE_CAP_ROUND_REV)
	StrokeCapTriangle    = StrokeCap(C.BL_STROKE_CAP_TRIANGLE)
	StrokeCapTriangleRev = StrokeCap(C.BL_STROKE_CAP_TRIANGLE_REV)
)

// StrokeTransformOrder selects whether the user transform is applied before
// or after stroking.
type StrokeTransformOrder uint8

const (
	StrokeTransformAfter  = StrokeTransformOrder(C.BL_STROKE_TRANSFORM_ORDER_AFTER)
	StrokeTransformBefore = StrokeTransformOrder(C.BL_STROKE_TRANSFORM_ORDER_BEFORE)
)

// FlattenMode selects the curve flattening strategy.
type FlattenMode uint8

const (
	FlattenDefault   = FlattenMode(C.BL_FLATTEN_MODE_DEFAULT)
	FlattenRecursive = FlattenMode(C.BL_FLATTEN_MODE_RECURSIVE)
)

// OffsetMode selects the path offsetting strategy.
type OffsetMode uint8

const (
	OffsetDefault   = OffsetMode(C.BL_OFFSET_MODE_DEFAULT)
	OffsetIterative = OffsetMode(C.BL_OFFSET_MODE_ITERATIVE)
)

// Range selects a subrange [Start, End) of a path's vertices. A nil *Range
// passed to the *Range methods means the whole path.
type Range struct {
	Start, End int
}

func (r *Range) native() *C.BLRange {
	if r == nil {
		return nil
	}
	return &C.BLRange{start: C.size_t(r.Start), end: C.size_t(r.End)}
}

// ApproximationOptions controls curve approximation quality. Its layout
// matches the native BLApproximationOptions.
type ApproximationOptions struct {
	flattenMode uint8
	offsetMode  uint8
	_           [6]uint8
	// FlattenTolerance is the tolerance used to flatten curves.
	FlattenTolerance float64
	// SimplifyTolerance is the tolerance used to approximate cubics with
	// quadratics.
	SimplifyTolerance float64
	// OffsetParameter is the offsetting strategy parameter.
	OffsetParameter float64
}

// DefaultApproximationOptions returns the native library's default curve
// approximation options.
func DefaultApproximationOptions() ApproximationOptions {
	return *(*ApproximationOptions)(unsafe.Pointer(&C.blDefaultApproximationOptions))
}

// FlattenMode returns the curve flattening strategy.
func (a *ApproximationOptions) FlattenMode() FlattenMode {
	return FlattenMode(a.flattenMode)
}

// SetFlattenMode sets the curve flattening strategy.
func (a *ApproximationOptions) SetFlattenMode(mode FlattenMode) {
	a.flattenMode = uint8(mode)
}

// OffsetMode returns the path offsetting strategy.
func (a *ApproximationOptions) OffsetMode() OffsetMode {
	return OffsetMode(a.offsetMode)
}

// SetOffsetMode sets the path offsetting strategy.
func (a *ApproximationOptions) SetOffsetMode(mode OffsetMode) {
	a.offsetMode = uint8(mode)
}

// strokeOptionsHints mirrors the leading union of BLStrokeOptionsCore. The
// native struct packs the caps, join, and transform order into a union that
// cgo does not expose as typed fields.
type strokeOptionsHints struct {
	startCap       uint8
	endCap         uint8
	join           uint8
	transformOrder uint8
	_              [4]uint8
}

// StrokeOptions holds the stroking parameters used when building stroked
// paths. Contexts keep their own stroke state; this struct is used with
// Path.AddStrokedPath.
type StrokeOptions struct {
	core C.BLStrokeOptionsCore
}

// NewStrokeOptions returns stroke options initialized to defaults.
func NewStrokeOptions() *StrokeOptions {
	opts := &StrokeOptions{}
	C.blStrokeOptionsInit(&opts.core)
	return opts
}

func (s *StrokeOptions) hints() *strokeOptionsHints {
	return (*strokeOptionsHints)(unsafe.Pointer(&s.core))
}

// Width returns the stroke width.
func (s *StrokeOptions) Width() float64 { return float64(s.core.width) }

// SetWidth sets the stroke width.
func (s *StrokeOptions) SetWidth(w float64) { s.core.width = C.double(w) }

// MiterLimit returns the miter limit.
func (s *StrokeOptions) MiterLimit() float64 { return float64(s.core.miterLimit) }

// SetMiterLimit sets the miter limit.
func (s *StrokeOptions) SetMiterLimit(limit float64) { s.core.miterLimit = C.double(limit) }

// DashOffset returns the dash offset.
func (s *StrokeOptions) DashOffset() float64 { return float64(s.core.dashOffset) }

// SetDashOffset sets the dash offset.
func (s *StrokeOptions) SetDashOffset(offset float64) { s.core.dashOffset = C.double(offset) }

// Join returns the stroke join.
func (s *StrokeOptions) Join() StrokeJoin { return StrokeJoin(s.hints().join) }

// SetJoin sets the stroke join.
func (s *StrokeOptions) SetJoin(join StrokeJoin) { s.hints().join = uint8(join) }

// StartCap returns the start cap.
func (s *StrokeOptions) StartCap() StrokeCap { return StrokeCap(s.hints().startCap) }

// EndCap returns the end cap.
func (s *StrokeOptions) EndCap() StrokeCap { return StrokeCap(s.hints().endCap) }

// SetCaps sets both the start and end cap.
func (s *StrokeOptions) SetCaps(cap StrokeCap) {
	h := s.hints()
	h.startCap = uint8(cap)
	h.endCap = uint8(cap)
}

// SetCap sets the cap at the given position.
func (s *StrokeOptions) SetCap(position StrokeCapPosition, cap StrokeCap) {
	if position == StrokeCapPositionStart {
		s.hints().startCap = uint8(cap)
	} else {
		s.hints().endCap = uint8(cap)
	}
}

// TransformOrder returns the stroke transform order.
func (s *StrokeOptions) TransformOrder() StrokeTransformOrder {
	return StrokeTransformOrder(s.hints().transformOrder)
}

// SetTransformOrder sets the stroke transform order.
func (s *StrokeOptions) SetTransformOrder(order StrokeTransformOrder) {
	s.hints().transformOrder = uint8(order)
}

// DashArray returns a copy of the dash array.
func (s *StrokeOptions) DashArray() []float64 {
	n := int(C.blArrayGetSize(&s.core.dashArray))
	if n == 0 {
		return nil
	}
	data := unsafe.Slice((*float64)(C.blArrayGetData(&s.core.dashArray)), n)
	out := make([]float64, n)
	copy(out, data)
	return out
}

// SetDashArray replaces the dash array.
func (s *StrokeOptions) SetDashArray(dashes []float64) error {
	C.blArrayClear(&s.core.dashArray)
	if len(dashes) == 0 {
		return nil
	}
	return resultToError(C.blArrayAppendView(&s.core.dashArray, unsafe.Pointer(&dashes[0]), C.size_t(len(dashes))))
}

// Destroy releases the stroke options. Destroy is idempotent.
func (s *StrokeOptions) Destroy() {
	C.blStrokeOptionsReset(&s.core)
}

// pathView mirrors the leading union of BLPathImpl.
type pathView struct {
	commandData *uint8
	vertexData  *Point
	size        uintptr
}

// Path is a 2D vector path backed by a native, reference-counted vertex
// buffer.
type Path struct {
	core C.BLPathCore
}

// NewPath creates a new empty path.
func NewPath() *Path {
	p := &Path{}
	C.blPathInit(&p.core)
	return p
}

// NewPathWithCapacity creates a new empty path with room for n vertices
// before having to reallocate.
func NewPathWithCapacity(n int) *Path {
	p := NewPath()
	p.Reserve(n)
	return p
}

func (p *Path) view() *pathView {
	return (*pathView)(unsafe.Pointer(p.core.impl))
}

// Len returns the number of vertices in the path.
func (p *Path) Len() int {
	return int(p.view().size)
}

// IsEmpty reports whether the path has no vertices.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// Capacity returns the currently allocated vertex capacity.
func (p *Path) Capacity() int {
	return int((*C.BLPathImpl)(unsafe.Pointer(p.core.impl)).capacity)
}

// CommandData returns the path's command bytes. The slice aliases native
// memory and is valid only until the path is modified or destroyed.
func (p *Path) CommandData() []byte {
	n := p.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice(p.view().commandData, n)
}

// VertexData returns the path's vertices. The slice aliases native memory
// and is valid only until the path is modified or destroyed.
func (p *Path) VertexData() []Point {
	n := p.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*Point)(unsafe.Pointer(C.blPathGetVertexData(&p.core))), n)
}

// Clear removes all vertices without releasing the allocation.
func (p *Path) Clear() {
	C.blPathClear(&p.core)
}

// Shrink shrinks the allocated capacity down to the current size. It panics
// if the native allocation fails.
func (p *Path) Shrink() {
	mustOK(C.blPathShrink(&p.core))
}

// Reserve reserves capacity for at least n vertices. It panics if the native
// allocation fails; use TryReserve to handle allocation failure.
func (p *Path) Reserve(n int) {
	mustOK(C.blPathReserve(&p.core, C.size_t(n)))
}

// TryReserve reserves capacity for at least n vertices.
func (p *Path) TryReserve(n int) error {
	return resultToError(C.blPathReserve(&p.core, C.size_t(n)))
}

// InfoFlags returns the path's cached info flags.
func (p *Path) InfoFlags() (PathFlags, error) {
	var flags C.uint32_t
	if err := resultToError(C.blPathGetInfoFlags(&p.core, &flags)); err != nil {
		return 0, err
	}
	return PathFlags(flags), nil
}

// ControlBox returns the bounding box of all vertices and control points.
func (p *Path) ControlBox() (Box, error) {
	var box Box
	err := resultToError(C.blPathGetControlBox(&p.core, (*C.BLBox)(unsafe.Pointer(&box))))
	return box, err
}

// BoundingBox returns the bounding box of all on-path vertices and curve
// extrema.
func (p *Path) BoundingBox() (Box, error) {
	var box Box
	err := resultToError(C.blPathGetBoundingBox(&p.core, (*C.BLBox)(unsafe.Pointer(&box))))
	return box, err
}

// FigureRange returns the vertex range of the figure containing the vertex
// at index.
func (p *Path) FigureRange(index int) (Range, error) {
	var r C.BLRange
	if err := resultToError(C.blPathGetFigureRange(&p.core, C.size_t(index), &r)); err != nil {
		return Range{}, err
	}
	return Range{Start: int(r.start), End: int(r.end)}, nil
}

// LastVertex returns the last vertex of the path.
func (p *Path) LastVertex() (Point, error) {
	var pt Point
	err := resultToError(C.blPathGetLastVertex(&p.core, (*C.BLPoint)(unsafe.Pointer(&pt))))
	return pt, err
}

// ClosestVertex returns the index of the vertex closest to pt within
// maxDistance, and its distance.
func (p *Path) ClosestVertex(pt Point, maxDistance float64) (int, float64, error) {
	var idx C.size_t
	var dist C.double
	err := resultToError(C.blPathGetClosestVertex(
		&p.core,
		(*C.BLPoint)(unsafe.Pointer(&pt)),
		C.double(maxDistance),
		&idx,
		&dist,
	))
	if err != nil {
		return 0, 0, err
	}
	return int(idx), float64(dist), nil
}

// HitTest tests whether pt is inside the path under the given fill rule.
func (p *Path) HitTest(pt Point, rule FillRule) HitTest {
	return HitTest(C.blPathHitTest(&p.core, (*C.BLPoint)(unsafe.Pointer(&pt)), C.uint32_t(rule)))
}

// SetVertexAt replaces the vertex at index.
func (p *Path) SetVertexAt(index int, cmd PathCommand, x, y float64) error {
	return resultToError(C.blPathSetVertexAt(&p.core, C.size_t(index), C.uint32_t(cmd), C.double(x), C.double(y)))
}

// MoveTo starts a new figure at (x, y).
func (p *Path) MoveTo(x, y float64) error {
	return resultToError(C.blPathMoveTo(&p.core, C.double(x), C.double(y)))
}

// LineTo adds a line to (x, y).
func (p *Path) LineTo(x, y float64) error {
	return resultToError(C.blPathLineTo(&p.core, C.double(x), C.double(y)))
}

// PolyTo adds a polyline through the given points.
func (p *Path) PolyTo(poly []Point) error {
	if len(poly) == 0 {
		return nil
	}
	return resultToError(C.blPathPolyTo(&p.core, (*C.BLPoint)(unsafe.Pointer(&poly[0])), C.size_t(len(poly))))
}

// QuadTo adds a quadratic curve to (x2, y2) with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) error {
	return resultToError(C.blPathQuadTo(&p.core, C.double(x1), C.double(y1), C.double(x2), C.double(y2)))
}

// CubicTo adds a cubic curve to (x3, y3) with control points (x1, y1) and
// (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) error {
	return resultToError(C.blPathCubicTo(&p.core, C.double(x1), C.double(y1), C.double(x2), C.double(y2), C.double(x3), C.double(y3)))
}

// SmoothQuadTo adds a quadratic curve to (x2, y2) with a control point
// mirrored from the previous curve.
func (p *Path) SmoothQuadTo(x2, y2 float64) error {
	return resultToError(C.blPathSmoothQuadTo(&p.core, C.double(x2), C.double(y2)))
}

// SmoothCubicTo adds a cubic curve to (x3, y3) with the first control point
// mirrored from the previous curve.
func (p *Path) SmoothCubicTo(x2, y2, x3, y3 float64) error {
	return resultToError(C.blPathSmoothCubicTo(&p.core, C.double(x2), C.double(y2), C.double(x3), C.double(y3)))
}

// ArcTo adds an elliptic arc around center (cx, cy) with radii (rx, ry) from
// start over sweep radians. If forceMoveTo is true a new figure is started
// even when the path is not empty.
func (p *Path) ArcTo(cx, cy, rx, ry, start, sweep float64, forceMoveTo bool) error {
	return resultToError(C.blPathArcTo(
		&p.core,
		C.double(cx), C.double(cy),
		C.double(rx), C.double(ry),
		C.double(start), C.double(sweep),
		C.bool(forceMoveTo),
	))
}

// ArcQuadrantTo adds a quarter-ellipse arc through corner (x1, y1) ending at
// (x2, y2).
func (p *Path) ArcQuadrantTo(x1, y1, x2, y2 float64) error {
	return resultToError(C.blPathArcQuadrantTo(&p.core, C.double(x1), C.double(y1), C.double(x2), C.double(y2)))
}

// EllipticArcTo adds an SVG style elliptic arc ending at (x1, y1).
func (p *Path) EllipticArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x1, y1 float64) error {
	return resultToError(C.blPathEllipticArcTo(
		&p.core,
		C.double(rx), C.double(ry),
		C.double(xAxisRotation),
		C.bool(largeArc), C.bool(sweep),
		C.double(x1), C.double(y1),
	))
}

// Close closes the current figure.
func (p *Path) Close() error {
	return resultToError(C.blPathClose(&p.core))
}

// AddGeometry appends a shape to the path, optionally transformed by m, in
// the given direction.
func (p *Path) AddGeometry(g Geometry, m *Matrix2D, dir GeometryDirection) error {
	geoType, data := g.geometry()
	return resultToError(C.blPathAddGeometry(
		&p.core,
		geoType,
		data,
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
		C.uint32_t(dir),
	))
}

// AddPolygon appends a polygon to the path, optionally transformed by m.
func (p *Path) AddPolygon(poly []Point, m *Matrix2D, dir GeometryDirection) error {
	if len(poly) == 0 {
		return nil
	}
	view := C.BLArrayView{
		data: unsafe.Pointer(&poly[0]),
		size: C.size_t(len(poly)),
	}
	return resultToError(C.blPathAddGeometry(
		&p.core,
		C.BL_GEOMETRY_TYPE_POLYGOND,
		unsafe.Pointer(&view),
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
		C.uint32_t(dir),
	))
}

// AddPolyline appends a polyline to the path, optionally transformed by m.
func (p *Path) AddPolyline(poly []Point, m *Matrix2D, dir GeometryDirection) error {
	if len(poly) == 0 {
		return nil
	}
	view := C.BLArrayView{
		data: unsafe.Pointer(&poly[0]),
		size: C.size_t(len(poly)),
	}
	return resultToError(C.blPathAddGeometry(
		&p.core,
		C.BL_GEOMETRY_TYPE_POLYLINED,
		unsafe.Pointer(&view),
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
		C.uint32_t(dir),
	))
}

// AddPath appends the vertices of other in range r (nil means all) to the
// path.
func (p *Path) AddPath(other *Path, r *Range) error {
	return resultToError(C.blPathAddPath(&p.core, &other.core, r.native()))
}

// AddTranslatedPath appends the vertices of other in range r (nil means all)
// translated by pt.
func (p *Path) AddTranslatedPath(other *Path, r *Range, pt Point) error {
	return resultToError(C.blPathAddTranslatedPath(
		&p.core,
		&other.core,
		r.native(),
		(*C.BLPoint)(unsafe.Pointer(&pt)),
	))
}

// AddTransformedPath appends the vertices of other in range r (nil means
// all) transformed by m.
func (p *Path) AddTransformedPath(other *Path, r *Range, m *Matrix2D) error {
	return resultToError(C.blPathAddTransformedPath(
		&p.core,
		&other.core,
		r.native(),
		(*C.BLMatrix2D)(unsafe.Pointer(m)),
	))
}

// AddReversedPath appends the vertices of other in range r (nil means all)
// in reverse order.
func (p *Path) AddReversedPath(other *Path, r *Range, mode PathReverseMode) error {
	return resultToError(C.blPathAddReversedPath(&p.core, &other.core, r.native(), C.uint32_t(mode)))
}

// AddStrokedPath appends the outline of other in range r (nil means all)
// stroked with the given options.
func (p *Path) AddStrokedPath(other *Path, r *Range, options *StrokeOptions, approx *ApproximationOptions) error {
	return resultToError(C.blPathAddStrokedPath(
		&p.core,
		&other.core,
		r.native(),
		&options.core,
		(*C.BLApproximationOptions)(unsafe.Pointer(approx)),
	))
}

// Translate translates the vertices in range r (nil means all) by pt.
func (p *Path) Translate(r *Range, pt Point) error {
	return resultToError(C.blPathTranslate(&p.core, r.native(), (*C.BLPoint)(unsafe.Pointer(&pt))))
}

// Transform transforms the vertices in range r (nil means all) by m.
func (p *Path) Transform(r *Range, m *Matrix2D) error {
	return resultToError(C.blPathTransform(&p.core, r.native(), (*C.BLMatrix2D)(unsafe.Pointer(m))))
}

// FitTo scales and translates the vertices in range r (nil means all) to fit
// into rect.
func (p *Path) FitTo(r *Range, rect Rect) error {
	return resultToError(C.blPathFitTo(&p.core, r.native(), (*C.BLRect)(unsafe.Pointer(&rect)), 0))
}

// Equals reports whether two paths hold identical vertices.
func (p *Path) Equals(other *Path) bool {
	return bool(C.blPathEquals(&p.core, &other.core))
}

// Clone returns a weak clone sharing the underlying vertex buffer.
func (p *Path) Clone() *Path {
	clone := &Path{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&p.core))
	return clone
}

// CloneDeep returns an independent copy of the path.
func (p *Path) CloneDeep() *Path {
	clone := NewPath()
	mustOK(C.blPathAssignDeep(&clone.core, &p.core))
	return clone
}

// Destroy releases the path handle. Destroy is idempotent.
func (p *Path) Destroy() {
	C.blPathReset(&p.core)
}

func (p *Path) geometry() (C.uint32_t, unsafe.Pointer) {
	return C.BL_GEOMETRY_TYPE_PATH, unsafe.Pointer(&p.core)
}

package blend2d

/*
#include <blend2d.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// ContextType identifies the rendering backend behind a context.
type ContextType uint32

const (
	ContextTypeNone        = ContextType(C.BL_CONTEXT_TYPE_NONE)
	ContextTypeDummy       = ContextType(C.BL_CONTEXT_TYPE_DUMMY)
	ContextTypeRaster      = ContextType(C.BL_CONTEXT_TYPE_RASTER)
	ContextTypeRasterAsync = ContextType(C.BL_CONTEXT_TYPE_RASTER_ASYNC)
)

// CompOp is a composition (blending) operator.
type CompOp uint32

const (
	CompOpSrcOver     = CompOp(C.BL_COMP_OP_SRC_OVER)
	CompOpSrcCopy     = CompOp(C.BL_COMP_OP_SRC_COPY)
	CompOpSrcIn       = CompOp(C.BL_COMP_OP_SRC_IN)
	CompOpSrcOut      = CompOp(C.BL_COMP_OP_SRC_OUT)
	CompOpSrcAtop     = CompOp(C.BL_COMP_OP_SRC_ATOP)
	CompOpDstOver     = CompOp(C.BL_COMP_OP_DST_OVER)
	CompOpDstCopy     = CompOp(C.BL_COMP_OP_DST_COPY)
	CompOpDstIn       = CompOp(C.BL_COMP_OP_DST_IN)
	CompOpDstOut      = CompOp(C.BL_COMP_OP_DST_OUT)
	CompOpDstAtop     = CompOp(C.BL_COMP_OP_DST_ATOP)
	CompOpXor         = CompOp(C.BL_COMP_OP_XOR)
	CompOpClear       = CompOp(C.BL_COMP_OP_CLEAR)
	CompOpPlus        = CompOp(C.BL_COMP_OP_PLUS)
	CompOpMinus       = CompOp(C.BL_COMP_OP_MINUS)
	CompOpMultiply    = CompOp(C.BL_COMP_OP_MULTIPLY)
	CompOpScreen      = CompOp(C.BL_COMP_OP_SCREEN)
	CompOpOverlay     = CompOp(C.BL_COMP_OP_OVERLAY)
	CompOpDarken      = CompOp(C.BL_COMP_OP_DARKEN)
	CompOpLighten     = CompOp(C.BL_COMP_OP_LIGHTEN)
	CompOpColorDodge  = CompOp(C.BL_COMP_OP_COLOR_DODGE)
	CompOpColorBurn   = CompOp(C.BL_COMP_OP_COLOR_BURN)
	CompOpLinearBurn  = CompOp(C.BL_COMP_OP_LINEAR_BURN)
	CompOpLinearLight = CompOp(C.BL_COMP_OP_LINEAR_LIGHT)
	CompOpPinLight    = CompOp(C.BL_COMP_OP_PIN_LIGHT)
	CompOpHardLight   = CompOp(C.BL_COMP_OP_HARD_LIGHT)
	CompOpSoftLight   = CompOp(C.BL_COMP_OP_SOFT_LIGHT)
	CompOpDifference  = CompOp(C.BL_COMP_OP_DIFFERENCE)
	CompOpExclusion   = CompOp(C.BL_COMP_OP_EXCLUSION)
)

// ContextHint identifies a quality hint slot.
type ContextHint uint32

const (
	HintRenderingQuality = ContextHint(C.BL_CONTEXT_HINT_RENDERING_QUALITY)
	HintGradientQuality  = ContextHint(C.BL_CONTEXT_HINT_GRADIENT_QUALITY)
	HintPatternQuality   = ContextHint(C.BL_CONTEXT_HINT_PATTERN_QUALITY)
)

// PatternQuality selects the pattern sampling quality.
type PatternQuality uint32

const (
	PatternQualityNearest  = PatternQuality(C.BL_PATTERN_QUALITY_NEAREST)
	PatternQualityBilinear = PatternQuality(C.BL_PATTERN_QUALITY_BILINEAR)
)

// ContextCreateFlags customize context creation.
type ContextCreateFlags uint32

const (
	// ContextCreateIsolatedRuntime creates the context with an isolated
	// runtime, mostly useful for testing.
	ContextCreateIsolatedRuntime = ContextCreateFlags(C.BL_CONTEXT_CREATE_FLAG_ISOLATED_RUNTIME)
	// ContextCreateOverrideFeatures forces the CPU features given in
	// ContextOptions.
	ContextCreateOverrideFeatures = ContextCreateFlags(C.BL_CONTEXT_CREATE_FLAG_OVERRIDE_FEATURES)
)

// ContextOptions customize rendering context creation.
type ContextOptions struct {
	Flags ContextCreateFlags
	// ThreadCount is the number of worker threads, zero means synchronous
	// rendering.
	ThreadCount uint32
	// CPUFeatures overrides CPU feature detection when
	// ContextCreateOverrideFeatures is set.
	CPUFeatures uint32
}

// ContextCookie pairs a Save call with its Restore call. The zero value is
// not a valid cookie.
type ContextCookie struct {
	data [2]uint64
}

// Context is a 2D rendering context drawing into an Image. All drawing
// operations are buffered; End or Flush forces them to complete.
type Context struct {
	core C.BLContextCore
}

// NewContext creates a rendering context drawing into target.
func NewContext(target *Image) (*Context, error) {
	return NewContextWithOptions(target, nil)
}

// NewContextWithOptions creates a rendering context drawing into target with
// the given creation options. A nil options means defaults.
func NewContextWithOptions(target *Image, options *ContextOptions) (*Context, error) {
	ctx := &Context{}
	var opts *C.BLContextCreateOptions
	if options != nil {
		opts = &C.BLContextCreateOptions{
			flags:       C.uint32_t(options.Flags),
			threadCount: C.uint32_t(options.ThreadCount),
			cpuFeatures: C.uint32_t(options.CPUFeatures),
		}
	}
	if err := resultToError(C.blContextInitAs(&ctx.core, &target.core, opts)); err != nil {
		return nil, fmt.Errorf("creating context: %w", err)
	}
	logger().Debug("context created", "width", target.Width(), "height", target.Height())
	return ctx, nil
}

func (ctx *Context) impl() *C.BLContextImpl {
	return (*C.BLContextImpl)(unsafe.Pointer(ctx.core.impl))
}

// Type returns the context's backend type.
func (ctx *Context) Type() ContextType {
	return ContextType(ctx.impl().contextType)
}

// TargetSize returns the size of the target image.
func (ctx *Context) TargetSize() Size {
	s := ctx.impl().targetSize
	return Size{W: float64(s.w), H: float64(s.h)}
}

// TargetWidth returns the width of the target image.
func (ctx *Context) TargetWidth() float64 { return ctx.TargetSize().W }

// TargetHeight returns the height of the target image.
func (ctx *Context) TargetHeight() float64 { return ctx.TargetSize().H }

// End detaches the context from its target and completes all pending
// operations. The context can no longer draw after End.
func (ctx *Context) End() {
	C.blContextEnd(&ctx.core)
}

// Flush flushes pending operations. If sync is true Flush blocks until all
// operations complete.
func (ctx *Context) Flush(sync bool) {
	var flags C.uint32_t
	if sync {
		flags = C.BL_CONTEXT_FLUSH_SYNC
	}
	C.blContextFlush(&ctx.core, flags)
}

// Save saves the current context state and returns a cookie that Restore can
// use to return to exactly this state.
func (ctx *Context) Save() ContextCookie {
	var cookie ContextCookie
	mustOK(C.blContextSave(&ctx.core, (*C.BLContextCookie)(unsafe.Pointer(&cookie))))
	return cookie
}

// Restore restores the state saved by the Save call that produced cookie,
// popping any states saved after it. A nil cookie restores the most recently
// saved state.
func (ctx *Context) Restore(cookie *ContextCookie) error {
	return resultToError(C.blContextRestore(&ctx.core, (*C.BLContextCookie)(unsafe.Pointer(cookie))))
}

// SetCompOp sets the composition operator.
func (ctx *Context) SetCompOp(op CompOp) error {
	return resultToError(C.blContextSetCompOp(&ctx.core, C.uint32_t(op)))
}

// SetGlobalAlpha sets the global alpha applied to all operations.
func (ctx *Context) SetGlobalAlpha(alpha float64) error {
	return resultToError(C.blContextSetGlobalAlpha(&ctx.core, C.double(alpha)))
}

// SetHint sets a quality hint.
func (ctx *Context) SetHint(hint ContextHint, value uint32) error {
	return resultToError(C.blContextSetHint(&ctx.core, C.uint32_t(hint), C.uint32_t(value)))
}

// SetPatternQuality sets the pattern sampling quality hint.
func (ctx *Context) SetPatternQuality(quality PatternQuality) error {
	return ctx.SetHint(HintPatternQuality, uint32(quality))
}

// SetFlattenMode sets the curve flattening strategy.
func (ctx *Context) SetFlattenMode(mode FlattenMode) error {
	return resultToError(C.blContextSetFlattenMode(&ctx.core, C.uint32_t(mode)))
}

// SetFlattenTolerance sets the curve flattening tolerance.
func (ctx *Context) SetFlattenTolerance(tolerance float64) error {
	return resultToError(C.blContextSetFlattenTolerance(&ctx.core, C.double(tolerance)))
}

// SetFillRule sets the fill rule.
func (ctx *Context) SetFillRule(rule FillRule) error {
	return resultToError(C.blContextSetFillRule(&ctx.core, C.uint32_t(rule)))
}

// SetFillAlpha sets the alpha applied to fill operations.
func (ctx *Context) SetFillAlpha(alpha float64) error {
	return resultToError(C.blContextSetFillAlpha(&ctx.core, C.double(alpha)))
}

// SetFillStyleRgba32 sets the fill style to a 32-bit 0xAARRGGBB color.
func (ctx *Context) SetFillStyleRgba32(rgba32 uint32) error {
	return resultToError(C.blContextSetFillStyleRgba32(&ctx.core, C.uint32_t(rgba32)))
}

// SetFillStyleRgba64 sets the fill style to a 64-bit color.
func (ctx *Context) SetFillStyleRgba64(rgba64 uint64) error {
	return resultToError(C.blContextSetFillStyleRgba64(&ctx.core, C.uint64_t(rgba64)))
}

// SetFillStyleGradient sets the fill style to a gradient.
func (ctx *Context) SetFillStyleGradient(g *Gradient) error {
	return resultToError(C.blContextSetFillStyle(&ctx.core, unsafe.Pointer(&g.core)))
}

// SetFillStylePattern sets the fill style to a pattern.
func (ctx *Context) SetFillStylePattern(p *Pattern) error {
	return resultToError(C.blContextSetFillStyle(&ctx.core, unsafe.Pointer(&p.core)))
}

// SetStrokeAlpha sets the alpha applied to stroke operations.
func (ctx *Context) SetStrokeAlpha(alpha float64) error {
	return resultToError(C.blContextSetStrokeAlpha(&ctx.core, C.double(alpha)))
}

// SetStrokeStyleRgba32 sets the stroke style to a 32-bit 0xAARRGGBB color.
func (ctx *Context) SetStrokeStyleRgba32(rgba32 uint32) error {
	return resultToError(C.blContextSetStrokeStyleRgba32(&ctx.core, C.uint32_t(rgba32)))
}

// SetStrokeStyleRgba64 sets the stroke style to a 64-bit color.
func (ctx *Context) SetStrokeStyleRgba64(rgba64 uint64) error {
	return resultToError(C.blContextSetStrokeStyleRgba64(&ctx.core, C.uint64_t(rgba64)))
}

// SetStrokeStyleGradient sets the stroke style to a gradient.
func (ctx *Context) SetStrokeStyleGradient(g *Gradient) error {
	return resultToError(C.blContextSetStrokeStyle(&ctx.core, unsafe.Pointer(&g.core)))
}

// SetStrokeStylePattern sets the stroke style to a pattern.
func (ctx *Context) SetStrokeStylePattern(p *Pattern) error {
	return resultToError(C.blContextSetStrokeStyle(&ctx.core, unsafe.Pointer(&p.core)))
}

// SetStrokeWidth sets the stroke width.
func (ctx *Context) SetStrokeWidth(width float64) error {
	return resultToError(C.blContextSetStrokeWidth(&ctx.core, C.double(width)))
}

// SetStrokeMiterLimit sets the stroke miter limit.
func (ctx *Context) SetStrokeMiterLimit(limit float64) error {
	return resultToError(C.blContextSetStrokeMiterLimit(&ctx.core, C.double(limit)))
}

// SetStrokeCap sets the stroke cap at the given position.
func (ctx *Context) SetStrokeCap(position StrokeCapPosition, cap StrokeCap) error {
	return resultToError(C.blContextSetStrokeCap(&ctx.core, C.uint32_t(position), C.uint32_t(cap)))
}

// SetStrokeCaps sets both stroke caps.
func (ctx *Context) SetStrokeCaps(cap StrokeCap) error {
	return resultToError(C.blContextSetStrokeCaps(&ctx.core, C.uint32_t(cap)))
}

// SetStrokeJoin sets the stroke join.
func (ctx *Context) SetStrokeJoin(join StrokeJoin) error {
	return resultToError(C.blContextSetStrokeJoin(&ctx.core, C.uint32_t(join)))
}

// SetStrokeDashOffset sets the stroke dash offset.
func (ctx *Context) SetStrokeDashOffset(offset float64) error {
	return resultToError(C.blContextSetStrokeDashOffset(&ctx.core, C.double(offset)))
}

// SetStrokeTransformOrder sets the stroke transform order.
func (ctx *Context) SetStrokeTransformOrder(order StrokeTransformOrder) error {
	return resultToError(C.blContextSetStrokeTransformOrder(&ctx.core, C.uint32_t(order)))
}

// SetStrokeOptions replaces the whole stroke state.
func (ctx *Context) SetStrokeOptions(options *StrokeOptions) error {
	return resultToError(C.blContextSetStrokeOptions(&ctx.core, &options.core))
}

func (ctx *Context) applyMatrixOp(op matrixOp, data unsafe.Pointer) error {
	return resultToError(C.blContextApplyMatrixOp(&ctx.core, C.uint32_t(op), data))
}

// SetMatrix replaces the user transformation matrix.
func (ctx *Context) SetMatrix(m *Matrix2D) error {
	return ctx.applyMatrixOp(matrixOpAssign, unsafe.Pointer(m))
}

// ResetMatrix resets the user transformation matrix to identity.
func (ctx *Context) ResetMatrix() error {
	return ctx.applyMatrixOp(matrixOpReset, nil)
}

// Translate translates the user matrix by (x, y).
func (ctx *Context) Translate(x, y float64) error {
	d := [2]float64{x, y}
	return ctx.applyMatrixOp(matrixOpTranslate, unsafe.Pointer(&d))
}

// Scale scales the user matrix by (x, y).
func (ctx *Context) Scale(x, y float64) error {
	d := [2]float64{x, y}
	return ctx.applyMatrixOp(matrixOpScale, unsafe.Pointer(&d))
}

// Skew skews the user matrix by (x, y).
func (ctx *Context) Skew(x, y float64) error {
	d := [2]float64{x, y}
	return ctx.applyMatrixOp(matrixOpSkew, unsafe.Pointer(&d))
}

// Rotate rotates the user matrix by angle (radians).
func (ctx *Context) Rotate(angle float64) error {
	return ctx.applyMatrixOp(matrixOpRotate, unsafe.Pointer(&angle))
}

// RotateAround rotates the user matrix by angle (radians) around (x, y).
func (ctx *Context) RotateAround(angle, x, y float64) error {
	d := [3]float64{angle, x, y}
	return ctx.applyMatrixOp(matrixOpRotatePt, unsafe.Pointer(&d))
}

// Transform multiplies the user matrix by m.
func (ctx *Context) Transform(m *Matrix2D) error {
	return ctx.applyMatrixOp(matrixOpTransform, unsafe.Pointer(m))
}

// PostTranslate post-translates the user matrix by (x, y).
func (ctx *Context) PostTranslate(x, y float64) error {
	d := [2]float64{x, y}
	return ctx.applyMatrixOp(matrixOpPostTranslate, unsafe.Pointer(&d))
}

// PostScale post-scales the user matrix by (x, y).
func (ctx *Context) PostScale(x, y float64) error {
	d := [2]float64{x, y}
	return ctx.applyMatrixOp(matrixOpPostScale, unsafe.Pointer(&d))
}

// PostSkew post-skews the user matrix by (x, y).
func (ctx *Context) PostSkew(x, y float64) error {
	d := [2]float64{x, y}
	return ctx.applyMatrixOp(matrixOpPostSkew, unsafe.Pointer(&d))
}

// PostRotate post-rotates the user matrix by angle (radians).
func (ctx *Context) PostRotate(angle float64) error {
	return ctx.applyMatrixOp(matrixOpPostRotate, unsafe.Pointer(&angle))
}

// PostRotateAround post-rotates the user matrix by angle (radians) around
// (x, y).
func (ctx *Context) PostRotateAround(angle, x, y float64) error {
	d := [3]float64{angle, x, y}
	return ctx.applyMatrixOp(matrixOpPostRotatePt, unsafe.Pointer(&d))
}

// PostTransform post-multiplies the user matrix by m.
func (ctx *Context) PostTransform(m *Matrix2D) error {
	return ctx.applyMatrixOp(matrixOpPostTransform, unsafe.Pointer(m))
}

// UserToMeta makes the current user transform part of the meta transform.
func (ctx *Context) UserToMeta() error {
	return resultToError(C.blContextUserToMeta(&ctx.core))
}

// ClipToRect intersects the clip area with rect.
func (ctx *Context) ClipToRect(rect Rect) error {
	return resultToError(C.blContextClipToRectD(&ctx.core, (*C.BLRect)(unsafe.Pointer(&rect))))
}

// ClipToRectI intersects the clip area with an integer rect.
func (ctx *Context) ClipToRectI(rect RectI) error {
	return resultToError(C.blContextClipToRectI(&ctx.core, (*C.BLRectI)(unsafe.Pointer(&rect))))
}

// RestoreClipping restores the clip area to the last saved state.
func (ctx *Context) RestoreClipping() error {
	return resultToError(C.blContextRestoreClipping(&ctx.core))
}

// ClearAll clears the whole target respecting the clip area.
func (ctx *Context) ClearAll() error {
	return resultToError(C.blContextClearAll(&ctx.core))
}

// ClearRect clears rect.
func (ctx *Context) ClearRect(rect Rect) error {
	return resultToError(C.blContextClearRectD(&ctx.core, (*C.BLRect)(unsafe.Pointer(&rect))))
}

// FillAll fills the whole target with the current fill style.
func (ctx *Context) FillAll() error {
	return resultToError(C.blContextFillAll(&ctx.core))
}

// FillGeometry fills a shape with the current fill style.
func (ctx *Context) FillGeometry(g Geometry) error {
	geoType, data := g.geometry()
	return resultToError(C.blContextFillGeometry(&ctx.core, geoType, data))
}

// FillPath fills path with the current fill style.
func (ctx *Context) FillPath(path *Path) error {
	return ctx.FillGeometry(path)
}

// FillRegion fills every box of region with the current fill style.
func (ctx *Context) FillRegion(region *Region) error {
	return ctx.FillGeometry(region)
}

// FillRect fills rect with the current fill style.
func (ctx *Context) FillRect(rect Rect) error {
	return resultToError(C.blContextFillRectD(&ctx.core, (*C.BLRect)(unsafe.Pointer(&rect))))
}

// FillRectI fills an integer rect with the current fill style.
func (ctx *Context) FillRectI(rect RectI) error {
	return resultToError(C.blContextFillRectI(&ctx.core, (*C.BLRectI)(unsafe.Pointer(&rect))))
}

// FillRoundRect fills a rounded rectangle with the current fill style.
func (ctx *Context) FillRoundRect(rr RoundRect) error {
	return ctx.FillGeometry(&rr)
}

// FillCircle fills a circle with the current fill style.
func (ctx *Context) FillCircle(cx, cy, radius float64) error {
	return ctx.FillGeometry(&Circle{CX: cx, CY: cy, Radius: radius})
}

// FillTriangle fills a triangle with the current fill style.
func (ctx *Context) FillTriangle(tri Triangle) error {
	return ctx.FillGeometry(&tri)
}

// FillChord fills a chord with the current fill style.
func (ctx *Context) FillChord(chord Chord) error {
	return ctx.FillGeometry(&chord)
}

// FillPie fills a pie slice with the current fill style.
func (ctx *Context) FillPie(pie Pie) error {
	return ctx.FillGeometry(&pie)
}

// FillPolygon fills a closed polygon with the current fill style.
func (ctx *Context) FillPolygon(poly []Point) error {
	if len(poly) == 0 {
		return nil
	}
	view := C.BLArrayView{
		data: unsafe.Pointer(&poly[0]),
		size: C.size_t(len(poly)),
	}
	return resultToError(C.blContextFillGeometry(
		&ctx.core, C.BL_GEOMETRY_TYPE_POLYGOND, unsafe.Pointer(&view)))
}

// FillEllipse fills an ellipse with the current fill style.
func (ctx *Context) FillEllipse(cx, cy, rx, ry float64) error {
	return ctx.FillGeometry(&Ellipse{CX: cx, CY: cy, RX: rx, RY: ry})
}

// FillText fills text at pt using font and the current fill style.
func (ctx *Context) FillText(pt Point, font *Font, text string) error {
	if len(text) == 0 {
		return nil
	}
	data := []byte(text)
	return resultToError(C.blContextFillTextD(
		&ctx.core,
		(*C.BLPoint)(unsafe.Pointer(&pt)),
		&font.core,
		unsafe.Pointer(&data[0]),
		C.size_t(len(data)),
		C.BL_TEXT_ENCODING_UTF8,
	))
}

// FillGlyphRun fills a shaped glyph run at pt using font and the current
// fill style.
func (ctx *Context) FillGlyphRun(pt Point, font *Font, run *GlyphRun) error {
	return resultToError(C.blContextFillGlyphRunD(
		&ctx.core,
		(*C.BLPoint)(unsafe.Pointer(&pt)),
		&font.core,
		run.ptr,
	))
}

// StrokeGeometry strokes a shape with the current stroke style.
func (ctx *Context) StrokeGeometry(g Geometry) error {
	geoType, data := g.geometry()
	return resultToError(C.blContextStrokeGeometry(&ctx.core, geoType, data))
}

// StrokePath strokes path with the current stroke style.
func (ctx *Context) StrokePath(path *Path) error {
	return ctx.StrokeGeometry(path)
}

// StrokeRect strokes rect with the current stroke style.
func (ctx *Context) StrokeRect(rect Rect) error {
	return resultToError(C.blContextStrokeRectD(&ctx.core, (*C.BLRect)(unsafe.Pointer(&rect))))
}

// StrokeRectI strokes an integer rect with the current stroke style.
func (ctx *Context) StrokeRectI(rect RectI) error {
	return resultToError(C.blContextStrokeRectI(&ctx.core, (*C.BLRectI)(unsafe.Pointer(&rect))))
}

// StrokeLine strokes a line segment with the current stroke style.
func (ctx *Context) StrokeLine(x0, y0, x1, y1 float64) error {
	return ctx.StrokeGeometry(&Line{X0: x0, Y0: y0, X1: x1, Y1: y1})
}

// StrokeCircle strokes a circle with the current stroke style.
func (ctx *Context) StrokeCircle(cx, cy, radius float64) error {
	return ctx.StrokeGeometry(&Circle{CX: cx, CY: cy, Radius: radius})
}

// StrokeEllipse strokes an ellipse outline with the current stroke style.
func (ctx *Context) StrokeEllipse(cx, cy, rx, ry float64) error {
	return ctx.StrokeGeometry(&Ellipse{CX: cx, CY: cy, RX: rx, RY: ry})
}

// StrokeRoundRect strokes a rounded rectangle outline with the current
// stroke style.
func (ctx *Context) StrokeRoundRect(rr RoundRect) error {
	return ctx.StrokeGeometry(&rr)
}

// StrokePolygon strokes a closed polygon outline with the current stroke
// style.
func (ctx *Context) StrokePolygon(poly []Point) error {
	if len(poly) == 0 {
		return nil
	}
	view := C.BLArrayView{
		data: unsafe.Pointer(&poly[0]),
		size: C.size_t(len(poly)),
	}
	return resultToError(C.blContextStrokeGeometry(
		&ctx.core, C.BL_GEOMETRY_TYPE_POLYGOND, unsafe.Pointer(&view)))
}

// StrokeText strokes text at pt using font and the current stroke style.
func (ctx *Context) StrokeText(pt Point, font *Font, text string) error {
	if len(text) == 0 {
		return nil
	}
	data := []byte(text)
	return resultToError(C.blContextStrokeTextD(
		&ctx.core,
		(*C.BLPoint)(unsafe.Pointer(&pt)),
		&font.core,
		unsafe.Pointer(&data[0]),
		C.size_t(len(data)),
		C.BL_TEXT_ENCODING_UTF8,
	))
}

// StrokeGlyphRun strokes a shaped glyph run at pt using font and the current
// stroke style.
func (ctx *Context) StrokeGlyphRun(pt Point, font *Font, run *GlyphRun) error {
	return resultToError(C.blContextStrokeGlyphRunD(
		&ctx.core,
		(*C.BLPoint)(unsafe.Pointer(&pt)),
		&font.core,
		run.ptr,
	))
}

// BlitImage draws img at pt. A nil area means the whole image.
func (ctx *Context) BlitImage(pt Point, img *Image, area *RectI) error {
	return resultToError(C.blContextBlitImageD(
		&ctx.core,
		(*C.BLPoint)(unsafe.Pointer(&pt)),
		&img.core,
		(*C.BLRectI)(unsafe.Pointer(area)),
	))
}

// BlitScaledImage draws img scaled to fill rect. A nil area means the whole
// image.
func (ctx *Context) BlitScaledImage(rect Rect, img *Image, area *RectI) error {
	return resultToError(C.blContextBlitScaledImageD(
		&ctx.core,
		(*C.BLRect)(unsafe.Pointer(&rect)),
		&img.core,
		(*C.BLRectI)(unsafe.Pointer(area)),
	))
}

// Clone returns a weak clone sharing the rendering state with ctx.
func (ctx *Context) Clone() *Context {
	clone := &Context{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&ctx.core))
	return clone
}

// Equals reports whether two contexts share the same impl.
func (ctx *Context) Equals(other *Context) bool {
	return implOf(unsafe.Pointer(&ctx.core)) == implOf(unsafe.Pointer(&other.core))
}

// Destroy releases the context, implicitly ending it first. Destroy is
// idempotent.
func (ctx *Context) Destroy() {
	C.blContextReset(&ctx.core)
}

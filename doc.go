// Package blend2d provides Go bindings for the Blend2D 2D graphics engine.
//
// # Overview
//
// Blend2D is a high-performance 2D vector graphics engine written in C++
// with a C API. This package wraps that API with idiomatic Go types: vector
// paths, linear/radial/conic gradients, image patterns, image codecs, and
// text/glyph rendering. All rasterization, compositing, and codec work is
// performed by the native library; this package contains no rendering
// algorithms of its own.
//
// # Quick Start
//
//	import "github.com/gogpu/blend2d"
//
//	img, _ := blend2d.NewImage(480, 480, blend2d.FormatPRGB32)
//	defer img.Destroy()
//
//	ctx, _ := blend2d.NewContext(img)
//	ctx.SetCompOp(blend2d.CompOpSrcCopy)
//	ctx.FillAll()
//
//	path := blend2d.NewPath()
//	defer path.Destroy()
//	path.MoveTo(26, 31)
//	path.CubicTo(642, 132, 587, -136, 25, 464)
//	path.CubicTo(882, 404, 144, 267, 27, 31)
//
//	ctx.SetCompOp(blend2d.CompOpSrcOver)
//	ctx.SetFillStyleRgba32(0xFFFFFFFF)
//	ctx.FillPath(path)
//	ctx.End()
//
//	codec, _ := blend2d.BuiltInCodecs().FindByName("BMP")
//	img.WriteToFile("out.bmp", codec)
//
// # Resource Management
//
// Every handle type (Image, Path, Gradient, Pattern, Context, Font, ...)
// wraps a reference-counted resource owned by the native library. Clone
// creates a weak copy that shares the underlying resource; CloneDeep, where
// offered, creates an independent copy. Call Destroy when a handle is no
// longer needed. Destroy is idempotent; using a handle after Destroy is a
// programmer error.
//
// # Error Handling
//
// Fallible operations return an error that wraps the native result code and
// can be compared with errors.Is against the Err* sentinels. Operations
// whose only failure mode is memory exhaustion panic instead, matching the
// native library's treatment of out-of-memory as unrecoverable; callers
// that want to handle allocation failure use the Try* variants.
package blend2d

// Version information
const (
	// Version is the current version of the bindings.
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)

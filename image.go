package blend2d

/*
#include <stdlib.h>
#include <blend2d.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// Format is a pixel format.
type Format uint32

const (
	// FormatNone is an invalid pixel format.
	FormatNone = Format(C.BL_FORMAT_NONE)
	// FormatPRGB32 is a 32-bit premultiplied ARGB pixel format (8-bit components).
	FormatPRGB32 = Format(C.BL_FORMAT_PRGB32)
	// FormatXRGB32 is a 32-bit (X)RGB pixel format (8-bit components, alpha ignored).
	FormatXRGB32 = Format(C.BL_FORMAT_XRGB32)
	// FormatA8 is an 8-bit alpha-only pixel format.
	FormatA8 = Format(C.BL_FORMAT_A8)
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPRGB32:
		return "PRGB32"
	case FormatXRGB32:
		return "XRGB32"
	case FormatA8:
		return "A8"
	default:
		return "None"
	}
}

// ScaleFilter selects the resampling filter used by Image.Scale. Use one of
// the Filter* values or a parameterized constructor.
type ScaleFilter struct {
	kind   uint32
	radius float64
	b, c   float64
}

var (
	// FilterNearest is a nearest neighbor filter (radius 1.0).
	FilterNearest = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_NEAREST}
	// FilterBilinear is a bilinear filter (radius 1.0).
	FilterBilinear = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_BILINEAR}
	// FilterBicubic is a bicubic filter (radius 2.0).
	FilterBicubic = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_BICUBIC}
	// FilterBell is a bell filter (radius 1.5).
	FilterBell = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_BELL}
	// FilterGauss is a Gauss filter (radius 2.0).
	FilterGauss = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_GAUSS}
	// FilterHermite is a Hermite filter (radius 1.0).
	FilterHermite = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_HERMITE}
	// FilterHanning is a Hanning filter (radius 1.0).
	FilterHanning = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_HANNING}
	// FilterCatrom is a Catmull-Rom filter (radius 2.0).
	FilterCatrom = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_CATROM}
	// FilterBessel is a Bessel filter (radius 3.2383).
	FilterBessel = ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_BESSEL}
)

// FilterSinc returns a sinc filter with the given radius.
func FilterSinc(radius float64) ScaleFilter {
	return ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_SINC, radius: radius}
}

// FilterLanczos returns a Lanczos filter with the given radius.
func FilterLanczos(radius float64) ScaleFilter {
	return ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_LANCZOS, radius: radius}
}

// FilterBlackman returns a Blackman filter with the given radius.
func FilterBlackman(radius float64) ScaleFilter {
	return ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_BLACKMAN, radius: radius}
}

// FilterMitchell returns a Mitchell filter with the given B and C
// coefficients.
func FilterMitchell(b, c float64) ScaleFilter {
	return ScaleFilter{kind: C.BL_IMAGE_SCALE_FILTER_MITCHELL, b: b, c: c}
}

// imageScaleOptions mirrors BLImageScaleOptions. Declared in Go because the
// native struct ends in an anonymous union that cgo does not expose as typed
// fields.
type imageScaleOptions struct {
	userFunc uintptr
	userData uintptr
	radius   float64
	data     [3]float64
}

func (f ScaleFilter) options() *C.BLImageScaleOptions {
	switch f.kind {
	case C.BL_IMAGE_SCALE_FILTER_SINC, C.BL_IMAGE_SCALE_FILTER_LANCZOS,
		C.BL_IMAGE_SCALE_FILTER_BLACKMAN, C.BL_IMAGE_SCALE_FILTER_MITCHELL:
		opts := &imageScaleOptions{
			radius: f.radius,
			data:   [3]float64{f.b, f.c, 0},
		}
		return (*C.BLImageScaleOptions)(unsafe.Pointer(opts))
	default:
		return nil
	}
}

// ImageData describes an image's pixel buffer. The Data slice aliases memory
// owned by the native library and is valid only while the image is alive and
// unmodified.
type ImageData struct {
	Data   []byte
	Stride int
	Size   SizeI
	Format Format
}

// Image is a 2D raster image backed by a native, reference-counted pixel
// buffer.
type Image struct {
	core C.BLImageCore
}

// NewImage creates a new image with the given dimensions and pixel format.
// The pixel data of the newly created image is uninitialized.
func NewImage(width, height int, format Format) (*Image, error) {
	img := &Image{}
	C.blImageInit(&img.core)
	if err := resultToError(C.blImageCreate(&img.core, C.int(width), C.int(height), C.uint32_t(format))); err != nil {
		return nil, fmt.Errorf("creating %dx%d image: %w", width, height, err)
	}
	return img, nil
}

// ReadImageFromFile decodes an image from the file at the given path using
// one of the provided codecs.
func ReadImageFromFile(path string, codecs *ImageCodecs) (*Image, error) {
	img := &Image{}
	C.blImageInit(&img.core)
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	if err := resultToError(C.blImageReadFromFile(&img.core, cpath, codecs.ptr)); err != nil {
		img.Destroy()
		return nil, fmt.Errorf("reading image %q: %w", path, err)
	}
	return img, nil
}

// ReadImageFromData decodes an image from an in-memory encoded buffer using
// one of the provided codecs.
func ReadImageFromData(data []byte, codecs *ImageCodecs) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrNoMoreData
	}
	img := &Image{}
	C.blImageInit(&img.core)
	if err := resultToError(C.blImageReadFromData(&img.core, unsafe.Pointer(&data[0]), C.size_t(len(data)), codecs.ptr)); err != nil {
		img.Destroy()
		return nil, fmt.Errorf("decoding image data: %w", err)
	}
	return img, nil
}

// Format returns the image's pixel format.
func (img *Image) Format() Format {
	return Format(img.impl().format)
}

// Size returns the image's dimensions.
func (img *Image) Size() SizeI {
	s := img.impl().size
	return SizeI{W: int32(s.w), H: int32(s.h)}
}

// Width returns the image's width in pixels.
func (img *Image) Width() int { return int(img.Size().W) }

// Height returns the image's height in pixels.
func (img *Image) Height() int { return int(img.Size().H) }

// Data returns a descriptor of the image including its pixel buffer. The
// returned slice is read-only from the caller's perspective; use MakeMutable
// to obtain a writable buffer.
func (img *Image) Data() ImageData {
	var data C.BLImageData
	mustOK(C.blImageGetData(&img.core, &data))
	return imageDataFromNative(&data)
}

// MakeMutable ensures the image holds a unique (non-shared) pixel buffer,
// copying on write if the buffer is shared, and returns its descriptor with
// a writable pixel slice.
func (img *Image) MakeMutable() (ImageData, error) {
	var data C.BLImageData
	if err := resultToError(C.blImageMakeMutable(&img.core, &data)); err != nil {
		return ImageData{}, err
	}
	return imageDataFromNative(&data), nil
}

func imageDataFromNative(data *C.BLImageData) ImageData {
	h := int(data.size.h)
	stride := int(data.stride)
	n := h * stride
	return ImageData{
		Data:   unsafe.Slice((*byte)(data.pixelData), n),
		Stride: stride,
		Size:   SizeI{W: int32(data.size.w), H: int32(data.size.h)},
		Format: Format(data.format),
	}
}

// Convert converts the image to a different pixel format in place.
func (img *Image) Convert(format Format) error {
	return resultToError(C.blImageConvert(&img.core, C.uint32_t(format)))
}

// Scale resizes the image to size using the given filter.
func (img *Image) Scale(size SizeI, filter ScaleFilter) error {
	return resultToError(C.blImageScale(
		&img.core,
		&img.core,
		(*C.BLSizeI)(unsafe.Pointer(&size)),
		C.uint32_t(filter.kind),
		filter.options(),
	))
}

// WriteToFile encodes the image with codec and writes it to path.
func (img *Image) WriteToFile(path string, codec *ImageCodec) error {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	if err := resultToError(C.blImageWriteToFile(&img.core, cpath, &codec.core)); err != nil {
		return fmt.Errorf("writing image %q: %w", path, err)
	}
	return nil
}

// WriteToData encodes the image with codec, appending the result to dst.
func (img *Image) WriteToData(dst *ByteArray, codec *ImageCodec) error {
	return resultToError(C.blImageWriteToData(&img.core, &dst.core, &codec.core))
}

// Equals reports whether two images have identical size, format, and pixels.
func (img *Image) Equals(other *Image) bool {
	return bool(C.blImageEquals(&img.core, &other.core))
}

// Clone returns a weak clone sharing the underlying pixel buffer. The native
// reference count is incremented; no pixel data is copied.
func (img *Image) Clone() *Image {
	clone := &Image{}
	initWeak(unsafe.Pointer(&clone.core), unsafe.Pointer(&img.core))
	return clone
}

// CloneDeep returns an independent copy of the image with its own pixel
// buffer.
func (img *Image) CloneDeep() *Image {
	clone := &Image{}
	C.blImageInit(&clone.core)
	mustOK(C.blImageAssignDeep(&clone.core, &img.core))
	return clone
}

// Destroy releases the image handle. The pixel buffer is freed when the last
// handle referencing it is destroyed. Destroy is idempotent.
func (img *Image) Destroy() {
	C.blImageReset(&img.core)
}

func (img *Image) impl() *C.BLImageImpl {
	return (*C.BLImageImpl)(unsafe.Pointer(img.core.impl))
}
